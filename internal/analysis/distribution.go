package analysis

import (
	"math"

	"godash/domain/aggregates"
	"godash/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tukey fence multiplier for boxplot whiskers
const whiskerCoef = 1.5

// binCount picks the numpy "auto" bin count: the larger of Sturges and Freedman-Diaconis
func binCount(sorted []float64, maxBins int) int {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	span := sorted[n-1] - sorted[0]
	if span == 0 {
		return 1
	}

	bins := int(math.Ceil(math.Log2(float64(n)))) + 1

	q1, q3 := quartiles(sorted)
	if iqr := q3 - q1; iqr > 0 {
		width := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		if fd := int(math.Ceil(span / width)); fd > bins {
			bins = fd
		}
	}

	if maxBins > 0 && bins > maxBins {
		bins = maxBins
	}
	return bins
}

// ComputeHistogram bins the values and overlays a Gaussian KDE scaled to counts.
// Empty input yields an empty histogram.
func ComputeHistogram(column string, values []float64, maxBins, densityPoints int) *aggregates.Histogram {
	data := finiteSorted(values)
	h := &aggregates.Histogram{
		Column:  column,
		Bins:    []aggregates.Bin{},
		Density: []aggregates.Point{},
	}
	if len(data) == 0 {
		return h
	}

	lo, hi := data[0], data[len(data)-1]
	if lo == hi {
		h.Bins = append(h.Bins, aggregates.Bin{Low: lo - 0.5, High: hi + 0.5, Count: len(data)})
		return h
	}

	bins := binCount(data, maxBins)
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram treats the top divider as exclusive
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, data, nil)
	for i, c := range counts {
		h.Bins = append(h.Bins, aggregates.Bin{Low: dividers[i], High: dividers[i+1], Count: int(c)})
	}
	h.Bins[bins-1].High = hi

	binWidth := (hi - lo) / float64(bins)
	h.Density = kernelDensity(data, lo, hi, densityPoints, float64(len(data))*binWidth)
	return h
}

// kernelDensity evaluates a Gaussian KDE with Scott's bandwidth on an even grid over [lo, hi]
func kernelDensity(data []float64, lo, hi float64, points int, scale float64) []aggregates.Point {
	if len(data) < 2 || points < 2 {
		return []aggregates.Point{}
	}
	_, std := stat.MeanStdDev(data, nil)
	if std == 0 || math.IsNaN(std) {
		return []aggregates.Point{}
	}
	bandwidth := std * math.Pow(float64(len(data)), -0.2)

	kernels := make([]distuv.Normal, len(data))
	for i, x := range data {
		kernels[i] = distuv.Normal{Mu: x, Sigma: bandwidth}
	}

	grid := make([]float64, points)
	floats.Span(grid, lo, hi)

	curve := make([]aggregates.Point, points)
	n := float64(len(data))
	for i, x := range grid {
		sum := 0.0
		for _, k := range kernels {
			sum += k.Prob(x)
		}
		curve[i] = aggregates.Point{X: x, Y: sum / n * scale}
	}
	return curve
}

// ComputeBoxPlot derives quartiles, Tukey whiskers and outliers
func ComputeBoxPlot(column string, values []float64) (*aggregates.BoxPlot, error) {
	data := finiteSorted(values)
	if len(data) == 0 {
		return nil, core.NewInsufficientDataError(aggregates.ViewBoxPlot, 0, 1)
	}

	q1, q3 := quartiles(data)
	median, _ := stats.Median(data)
	iqr := q3 - q1
	lowFence := q1 - whiskerCoef*iqr
	highFence := q3 + whiskerCoef*iqr

	box := &aggregates.BoxPlot{
		Column:       column,
		Min:          data[0],
		Q1:           q1,
		Median:       median,
		Q3:           q3,
		Max:          data[len(data)-1],
		LowerWhisker: q1,
		UpperWhisker: q3,
		Outliers:     []float64{},
	}

	lowerSet := false
	for _, v := range data {
		if v < lowFence || v > highFence {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		if !lowerSet {
			box.LowerWhisker = v
			lowerSet = true
		}
		box.UpperWhisker = v
	}
	return box, nil
}
