// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/api"
	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

// AnalyzeUsecase はポートフォリオ分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalyzeUsecase interface {
	AnalyzePortfolios(ctx context.Context, urls []string) (*entity.AnalysisReport, error)
}

// AnalyzeHandler はポートフォリオ分析のHTTPリクエストを処理します。
type AnalyzeHandler struct {
	uc AnalyzeUsecase
}

// NewAnalyzeHandler はAnalyzeHandlerの新しいインスタンスを生成します。
func NewAnalyzeHandler(uc AnalyzeUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

// Analyze は複数のポートフォリオURLを分析し、複数のポートフォリオで
// AI企業と判定された企業名と出現数を返します。
//
// エンドポイント: POST /analyze
// Content-Type: application/json
// ボディ: {"urls": ["https://...", ...]}
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("分析リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "urls is required"})
		return
	}

	report, err := h.uc.AnalyzePortfolios(c.Request.Context(), req.URLs)
	if err != nil {
		if errors.Is(err, usecase.ErrNoSources) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "urls is required"})
			return
		}
		slog.Error("ポートフォリオ分析に失敗", "error", err, "urls", len(req.URLs))
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "portfolio analysis failed"})
		return
	}

	c.JSON(http.StatusOK, toAnalyzeResponse(report))
}

func toAnalyzeResponse(r *entity.AnalysisReport) api.AnalyzeResponse {
	recurring := r.Recurring
	if recurring == nil {
		recurring = map[string]int{}
	}
	failures := make([]api.FailureResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, api.FailureResponse{
			Source:  f.Source,
			Company: f.Company,
			Stage:   string(f.Stage),
			Message: f.Message,
		})
	}
	return api.AnalyzeResponse{
		RecurringAICompanies: recurring,
		RunID:                r.RunID,
		Failures:             failures,
	}
}
