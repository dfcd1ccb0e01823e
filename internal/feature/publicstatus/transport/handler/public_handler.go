// Package handler はpublicstatusフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/api"
	"portfolio_backend/internal/feature/publicstatus/domain/entity"
	"portfolio_backend/internal/feature/publicstatus/usecase"
)

// PublicStatusLabel はサマリーに出力する上場状態の表記です。
const PublicStatusLabel = "Public"

// PublicUsecase は上場企業抽出のユースケースインターフェースを定義します。
type PublicUsecase interface {
	FindPublicCompanies(ctx context.Context, sites []entity.Site) (*entity.StatusReport, error)
}

// PublicHandler は上場企業抽出のHTTPリクエストを処理します。
type PublicHandler struct {
	uc PublicUsecase
}

// NewPublicHandler はPublicHandlerの新しいインスタンスを生成します。
func NewPublicHandler(uc PublicUsecase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// FindPublicCompanies は渡されたポートフォリオHTMLから、頻出する上場企業を返します。
//
// エンドポイント: POST /public-companies
// ボディ: {"sites": [{"url": "...", "html_content": "..."}]}
func (h *PublicHandler) FindPublicCompanies(c *gin.Context) {
	var req api.PublicCompaniesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("上場企業リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "sites with html_content are required"})
		return
	}

	sites := make([]entity.Site, 0, len(req.Sites))
	for _, s := range req.Sites {
		sites = append(sites, entity.Site{URL: s.URL, HTML: s.HTMLContent})
	}

	report, err := h.uc.FindPublicCompanies(c.Request.Context(), sites)
	if err != nil {
		if errors.Is(err, usecase.ErrNoSites) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "sites with html_content are required"})
			return
		}
		slog.Error("上場企業の抽出に失敗", "error", err, "sites", len(sites))
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "public company lookup failed"})
		return
	}

	c.JSON(http.StatusOK, api.PublicCompaniesResponse{
		Companies: Summarize(report.Companies),
		Unknown:   report.Unknown,
	})
}

// Summarize は上場企業をレスポンス用のサマリーに整形します。
func Summarize(companies []entity.PublicCompany) []api.PublicCompanyResponse {
	out := make([]api.PublicCompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, api.PublicCompanyResponse{
			Company:              c.Name,
			PortfolioAppearances: c.Appearances,
			PublicStatus:         PublicStatusLabel,
		})
	}
	return out
}
