package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mpaiva/sunplot/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sunplot",
		Short: "Sun-exposure analysis engine for landscape planning",
	}

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(eventsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func simulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Run the sun-exposure simulation and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "simulate a single date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.start, "start", "", "range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "range end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.year, "year", 0, "simulate a full year (daily-average mode)")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "also write solar_data.csv to the output directory")
	cmd.Flags().BoolVar(&opts.dxf, "dxf", false, "also write layout.dxf to the output directory")
	cmd.Flags().BoolVar(&opts.heatmap, "heatmap", false, "also write solar_heatmap.png to the output directory")
	cmd.Flags().StringVar(&opts.plants, "plants", "", "plant catalog JSON; print planting suggestions per luminosity class")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a site spec without running the simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func eventsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "events [project-path]",
		Short: "Print sunrise, sunset, and solar noon for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEvents(args[0], date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to report (YYYY-MM-DD, default today)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local analysis server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := server.LoadOptions()
			if err != nil {
				return err
			}
			if port != 0 {
				opts.Port = port
			}
			srv := server.New(args[0], opts)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides SUNPLOT_PORT)")
	return cmd
}
