package di

import (
	"portfolio_backend/internal/feature/publicstatus/adapters/gemini"
	"portfolio_backend/internal/feature/publicstatus/adapters/mentions"
	"portfolio_backend/internal/feature/publicstatus/transport/handler"
	"portfolio_backend/internal/feature/publicstatus/usecase"
	"portfolio_backend/internal/platform/llm"
)

// NewPublicUsecase wires the mention extractor and the Gemini listing status checker.
func NewPublicUsecase(gen *llm.GeminiClient, rec usecase.StatusRecorder) handler.PublicUsecase {
	return usecase.NewPublicUsecase(mentions.NewExtractor(), gemini.NewStatusChecker(gen), rec)
}
