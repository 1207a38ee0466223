package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"godash/domain/aggregates"
	"godash/domain/dataset"
	"godash/internal/dashboard"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	muted   = color.New(color.FgHiBlack).SprintFunc()
	warn    = color.New(color.FgYellow).SprintFunc()
	barFill = color.New(color.FgGreen).SprintFunc()
)

func disableColor() {
	color.NoColor = true
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func renderColumns(w io.Writer, ds *dataset.Dataset, columns []dashboard.ColumnInfo) {
	fmt.Fprintf(w, "%s\n", heading(fmt.Sprintf("Numeric columns of %s (%d rows)", ds.Source, ds.RowCount())))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tMIN\tMAX")
	for _, col := range columns {
		if !col.HasValues {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", col.Name, muted("-"), muted("-"))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", col.Name, num(col.Min), num(col.Max))
	}
	tw.Flush()
}

func renderView(w io.Writer, view *dashboard.View) {
	p := view.Params
	fmt.Fprintf(w, "%s\n", heading("Interactive Dashboard"))
	fmt.Fprintf(w, "Filter: %s in [%s, %s]\n", p.Column, num(p.Range.Low), num(p.Range.High))
	fmt.Fprintf(w, "Rows: %d of %d\n", view.RowCount, view.TotalRows)

	aggs := view.Aggregates
	if view.Preview != nil {
		renderPreview(w, view.Preview)
	}
	renderSummary(w, aggs)
	renderHistogram(w, aggs)
	renderBoxPlot(w, aggs)
	renderSeries(w, aggs)
	renderTopValues(w, aggs)
	renderCorrelation(w, aggs)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", heading(title))
}

func unavailable(w io.Writer, aggs *aggregates.DerivedAggregates, view string) bool {
	if reason, failed := aggs.Errors[view]; failed {
		fmt.Fprintf(w, "%s\n", warn(reason))
		return true
	}
	return false
}

func renderPreview(w io.Writer, preview *dataset.PreviewTable) {
	section(w, "Filtered data preview")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(preview.Columns, "\t"))
	for i, row := range preview.Rows {
		fmt.Fprintf(tw, "%d\t%s\n", preview.Index[i], strings.Join(row, "\t"))
	}
	tw.Flush()
	if preview.Truncated {
		fmt.Fprintf(w, "%s\n", muted(fmt.Sprintf("... %d more rows", preview.Total-len(preview.Rows))))
	}
}

func renderSummary(w io.Writer, aggs *aggregates.DerivedAggregates) {
	section(w, "Summary statistics")
	if unavailable(w, aggs, aggregates.ViewSummary) || aggs.Summary == nil {
		return
	}
	s := aggs.Summary
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range []struct {
		label string
		value string
	}{
		{"count", strconv.Itoa(s.Count)},
		{"mean", num(s.Mean)},
		{"std", num(s.StdDev)},
		{"min", num(s.Min)},
		{"25%", num(s.Q1)},
		{"50%", num(s.Median)},
		{"75%", num(s.Q3)},
		{"max", num(s.Max)},
	} {
		fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value)
	}
	tw.Flush()
}

const barWidth = 40

func bar(count, max int) string {
	if max == 0 {
		return ""
	}
	n := count * barWidth / max
	if n == 0 && count > 0 {
		n = 1
	}
	return barFill(strings.Repeat("#", n))
}

func renderHistogram(w io.Writer, aggs *aggregates.DerivedAggregates) {
	section(w, "Distribution")
	if unavailable(w, aggs, aggregates.ViewHistogram) || aggs.Histogram == nil {
		return
	}
	max := 0
	for _, b := range aggs.Histogram.Bins {
		if b.Count > max {
			max = b.Count
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, b := range aggs.Histogram.Bins {
		fmt.Fprintf(tw, "[%s, %s]\t%d\t%s\n", num(b.Low), num(b.High), b.Count, bar(b.Count, max))
	}
	tw.Flush()
}

func renderBoxPlot(w io.Writer, aggs *aggregates.DerivedAggregates) {
	section(w, "Boxplot")
	if unavailable(w, aggs, aggregates.ViewBoxPlot) || aggs.BoxPlot == nil {
		return
	}
	b := aggs.BoxPlot
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "whiskers\t%s .. %s\n", num(b.LowerWhisker), num(b.UpperWhisker))
	fmt.Fprintf(tw, "box\t%s | %s | %s\n", num(b.Q1), num(b.Median), num(b.Q3))
	fmt.Fprintf(tw, "range\t%s .. %s\n", num(b.Min), num(b.Max))
	fmt.Fprintf(tw, "outliers\t%d\n", len(b.Outliers))
	tw.Flush()
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

const sparkWidth = 60

// sparkline draws values in row order, averaging into at most sparkWidth cells
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	cells := len(values)
	if cells > sparkWidth {
		cells = sparkWidth
	}
	means := make([]float64, cells)
	for i := range means {
		from := i * len(values) / cells
		to := (i + 1) * len(values) / cells
		sum := 0.0
		for _, v := range values[from:to] {
			sum += v
		}
		means[i] = sum / float64(to-from)
	}

	lo, hi := means[0], means[0]
	for _, m := range means {
		lo, hi = math.Min(lo, m), math.Max(hi, m)
	}
	var sb strings.Builder
	for _, m := range means {
		level := 0
		if hi > lo {
			level = int((m - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		sb.WriteRune(sparkLevels[level])
	}
	return sb.String()
}

func renderSeries(w io.Writer, aggs *aggregates.DerivedAggregates) {
	section(w, "Series")
	if unavailable(w, aggs, aggregates.ViewSeries) || aggs.Series == nil {
		return
	}
	values := make([]float64, 0, len(aggs.Series.Points))
	for _, p := range aggs.Series.Points {
		if p.Value != nil {
			values = append(values, *p.Value)
		}
	}
	if len(values) == 0 {
		fmt.Fprintln(w, muted("no values"))
		return
	}
	fmt.Fprintf(w, "%s  %s\n", sparkline(values), muted(fmt.Sprintf("%d points", len(values))))
}

func renderTopValues(w io.Writer, aggs *aggregates.DerivedAggregates) {
	if aggs.TopValues == nil {
		section(w, "Top most frequent values")
		unavailable(w, aggs, aggregates.ViewTopValues)
		return
	}
	section(w, fmt.Sprintf("Top %d most frequent values", len(aggs.TopValues.Entries)))
	if len(aggs.TopValues.Entries) == 0 {
		fmt.Fprintln(w, muted("no values"))
		return
	}
	max := aggs.TopValues.Entries[0].Count
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, e := range aggs.TopValues.Entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Label, e.Count, bar(e.Count, max))
	}
	tw.Flush()
}

func renderCorrelation(w io.Writer, aggs *aggregates.DerivedAggregates) {
	section(w, "Correlation")
	if unavailable(w, aggs, aggregates.ViewCorrelation) || aggs.Correlation == nil {
		return
	}
	m := aggs.Correlation
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(m.Columns, "\t"))
	for i, name := range m.Columns {
		cells := make([]string, len(m.Columns))
		for j, v := range m.Values[i] {
			if math.IsNaN(v) {
				cells[j] = "n/a"
				continue
			}
			cells[j] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", name, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
