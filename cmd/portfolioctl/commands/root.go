// Package commands implements the portfolioctl command tree.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio_backend/internal/platform/config"
	"portfolio_backend/internal/platform/logging"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "portfolioctl analyzes VC portfolio pages from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// ExecuteContext runs the command tree and returns the process exit code.
func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
