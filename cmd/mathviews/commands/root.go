package commands

import (
	"context"
	"fmt"
	"mathviews/internal/components/telemetry"
	"mathviews/internal/fetch"
	"mathviews/internal/popularity"
	"mathviews/internal/scrapers/mathmen"
	"mathviews/internal/scrapers/xtools"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	top        int
	asTable    bool
	verbose    bool
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "The json5 config to read, a missing file means defaults.")
	rootCmd.Flags().IntVar(&top, "top", popularity.DefaultTop, "How many of the most viewed mathematicians to list.")
	rootCmd.Flags().BoolVar(&asTable, "table", false, "Render the ranking as a table.")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information, including every request.")
}

var rootCmd = &cobra.Command{
	Use:   "mathviews [--top <n>] [--table] [--config <path>]",
	Short: "mathviews ranks mathematicians by their recent wikipedia pageviews.",
	Args:  cobra.NoArgs,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if cmd.Flags().Changed("top") {
			cfg.Report.Top = top
		}
		if cmd.Flags().Changed("table") {
			cfg.Report.Table = asTable
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}

		telemetry.InitSlog(cmd.ErrOrStderr(), cfg.Verbose)
		tel := telemetry.SlogAPI{}

		fetcher := fetch.NewClient(cfg.FetchOptions(), tel)
		service := popularity.NewService(
			mathmen.NewClient(fetcher, tel),
			xtools.NewClient(fetcher, tel),
			tel,
		)

		_, err = service.Run(cmd.Context(), cmd.OutOrStdout(), cfg.ReportOptions())
		return err
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
