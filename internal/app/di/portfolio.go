// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"

	"portfolio_backend/internal/feature/portfolio/adapters/gemini"
	"portfolio_backend/internal/feature/portfolio/adapters/scraper"
	"portfolio_backend/internal/feature/portfolio/adapters/vision"
	"portfolio_backend/internal/feature/portfolio/transport/handler"
	"portfolio_backend/internal/feature/portfolio/usecase"
	"portfolio_backend/internal/platform/config"
	infrahttp "portfolio_backend/internal/platform/http"
	"portfolio_backend/internal/platform/llm"
)

// NewGemini creates the Gemini client shared by every model-backed adapter.
func NewGemini(ctx context.Context, cfg *config.Config) (*llm.GeminiClient, error) {
	return llm.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
}

// NewFetcher creates a page and image fetcher on the scraping HTTP client.
func NewFetcher(cfg *config.Config) *scraper.Fetcher {
	httpClient := infrahttp.NewScrapingClient(cfg.HTTPTimeout, cfg.CloudflareBypass)
	return scraper.NewFetcher(httpClient, cfg.UserAgent, cfg.MaxBodySize)
}

// NewAnalyzeUsecase wires the scraper, Gemini and Cloud Vision adapters into the
// portfolio analysis usecase. The returned close function releases the Vision client.
func NewAnalyzeUsecase(ctx context.Context, cfg *config.Config, gen *llm.GeminiClient, rec usecase.Recorder) (handler.AnalyzeUsecase, func() error, error) {
	labeler, err := vision.NewVisionLabeler(ctx, cfg.VisionMaxLabels)
	if err != nil {
		return nil, nil, err
	}

	fetcher := NewFetcher(cfg)
	scorer := usecase.NewConsensusScorer(
		fetcher,
		gemini.NewGeminiSentiment(gen),
		labeler,
		gemini.NewGeminiJudge(gen),
	)
	uc := usecase.NewAnalyzeUsecase(fetcher, scraper.NewExtractor(), scorer, rec)
	return uc, labeler.Close, nil
}
