package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio_backend/internal/app/di"
	"portfolio_backend/internal/feature/publicstatus/domain/entity"
)

// pageFetcher downloads a page when a public argument is a URL.
type pageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) ([]byte, error)
}

func init() {
	rootCmd.AddCommand(publicCmd)
}

var publicCmd = &cobra.Command{
	Use:   "public FILE|URL...",
	Short: "Ranks companies mentioned across portfolio pages and lists the most frequent public ones.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sites, err := loadSites(ctx, di.NewFetcher(cfg), args)
		if err != nil {
			return err
		}

		gen, err := di.NewGemini(ctx, cfg)
		if err != nil {
			return err
		}
		report, err := di.NewPublicUsecase(gen, nil).FindPublicCompanies(ctx, sites)
		if err != nil {
			return err
		}
		renderPublic(cmd.OutOrStdout(), report)
		return nil
	},
}

// loadSites reads each argument as a local HTML file, or fetches it when it is an http(s) URL.
func loadSites(ctx context.Context, pages pageFetcher, args []string) ([]entity.Site, error) {
	sites := make([]entity.Site, 0, len(args))
	for _, arg := range args {
		var (
			body []byte
			err  error
		)
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			body, err = pages.FetchPage(ctx, arg)
		} else {
			body, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", arg, err)
		}
		sites = append(sites, entity.Site{URL: arg, HTML: string(body)})
	}
	return sites, nil
}
