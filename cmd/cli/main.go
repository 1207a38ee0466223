package main

import (
	"fmt"
	"os"

	"godash/internal/dashboard"
	loader "godash/internal/dataset"
	"godash/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	source  string
	sheet   string
	noColor bool
}

func main() {
	_ = godotenv.Load()

	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "godash-cli",
		Short: "Explore a tabular dataset from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				disableColor()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.source, "source", os.Getenv("DATA_SOURCE"), "Dataset file path or postgres URL (defaults to DATA_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&flags.sheet, "sheet", os.Getenv("DATA_SHEET"), "Worksheet to read from an .xlsx source")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newColumnsCmd(flags),
		newViewCmd(flags),
		newSampleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newColumnsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List numeric columns and their value ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, err := openController(cmd, flags, dashboard.DefaultOptions())
			if err != nil {
				return err
			}
			renderColumns(cmd.OutOrStdout(), controller.Dataset(), controller.Columns())
			return nil
		},
	}
}

func newViewCmd(flags *globalFlags) *cobra.Command {
	var (
		column  string
		low     float64
		high    float64
		showRaw bool
		rows    int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Filter by a numeric column range and print the derived views",
		Long: `Filter rows whose value in --column lies in [--low, --high] and print the
summary, distribution, top values and correlation of the filtered rows.

Example: godash-cli view --source train.csv --column Age --low 20 --high 40 --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := dashboard.DefaultOptions()
			opts.PreviewRows = rows

			controller, err := openController(cmd, flags, opts)
			if err != nil {
				return err
			}

			params := controller.DefaultParameters()
			if column != "" {
				params.Column = column
				if r, err := controller.Bounds(column); err == nil {
					params.Range = r
				}
			}
			if cmd.Flags().Changed("low") {
				params.Range.Low = low
			}
			if cmd.Flags().Changed("high") {
				params.Range.High = high
			}
			params.ShowRaw = showRaw

			view, err := controller.Compute(params)
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Numeric column to filter on (defaults to the first)")
	cmd.Flags().Float64Var(&low, "low", 0, "Lower bound, inclusive (defaults to the column minimum)")
	cmd.Flags().Float64Var(&high, "high", 0, "Upper bound, inclusive (defaults to the column maximum)")
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Print the filtered rows")
	cmd.Flags().IntVar(&rows, "rows", dashboard.DefaultPreviewRows, "Maximum rows printed with --raw")

	return cmd
}

func newSampleCmd() *cobra.Command {
	config := testkit.DefaultPassengerConfig()

	cmd := &cobra.Command{
		Use:   "sample [output.csv]",
		Short: "Write a synthetic passenger table to explore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := testkit.NewPassengerGenerator(config).WriteCSV(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", config.Rows, args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&config.Rows, "rows", config.Rows, "Number of rows")
	cmd.Flags().Int64Var(&config.Seed, "seed", config.Seed, "Random seed")
	cmd.Flags().Float64Var(&config.MissingRate, "missing", config.MissingRate, "Share of Age cells left empty")

	return cmd
}

func openController(cmd *cobra.Command, flags *globalFlags, opts dashboard.Options) (*dashboard.Controller, error) {
	if flags.source == "" {
		return nil, fmt.Errorf("no data source: pass --source or set DATA_SOURCE")
	}

	ds, err := loader.Shared(flags.sheet).Load(cmd.Context(), flags.source)
	if err != nil {
		return nil, err
	}
	return dashboard.NewController(ds, opts)
}
