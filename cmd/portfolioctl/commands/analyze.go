package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"portfolio_backend/internal/app/di"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze URL...",
	Short: "Scores the companies on each portfolio page and lists AI companies found on more than one.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		gen, err := di.NewGemini(ctx, cfg)
		if err != nil {
			return err
		}
		uc, closeVision, err := di.NewAnalyzeUsecase(ctx, cfg, gen, nil)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeVision(); err != nil {
				slog.Error("failed to close vision client", "error", err)
			}
		}()

		report, err := uc.AnalyzePortfolios(ctx, args)
		if err != nil {
			return err
		}
		renderAnalysis(cmd.OutOrStdout(), report)
		return nil
	},
}
