package router

import (
	"github.com/gin-gonic/gin"

	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	publichandler "portfolio_backend/internal/feature/publicstatus/transport/handler"
	"portfolio_backend/internal/platform/http/handler"
	jwtmw "portfolio_backend/internal/platform/jwt"
	"portfolio_backend/internal/platform/metrics"
)

// Options controls optional behaviour of the router.
type Options struct {
	// JWTSecret enables bearer authentication on the API routes when non-empty.
	JWTSecret string
}

func NewRouter(analyze *portfoliohandler.AnalyzeHandler, public *publichandler.PublicHandler,
	m *metrics.Manager, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), m.Middleware())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	// Prometheus
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// APIルート
	// JWT_SECRET が設定されている場合のみ認証必須
	apiGroup := r.Group("/")
	if opts.JWTSecret != "" {
		apiGroup.Use(jwtmw.AuthRequired(opts.JWTSecret))
	}
	{
		apiGroup.POST("/analyze", analyze.Analyze)
		apiGroup.POST("/public-companies", public.FindPublicCompanies)
	}

	return r
}
