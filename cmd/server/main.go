package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/app/di"
	"portfolio_backend/internal/app/router"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	publichandler "portfolio_backend/internal/feature/publicstatus/transport/handler"
	"portfolio_backend/internal/platform/config"
	"portfolio_backend/internal/platform/logging"
	"portfolio_backend/internal/platform/metrics"
)

func main() {
	// 設定（.env → YAML → PA_ 環境変数）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewManager()

	// 外部API
	gen, err := di.NewGemini(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	analyzeUC, closeVision, err := di.NewAnalyzeUsecase(ctx, cfg, gen, m)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := closeVision(); err != nil {
			slog.Error("failed to close vision client", "error", err)
		}
	}()
	publicUC := di.NewPublicUsecase(gen, m)

	// Handler
	analyzeH := portfoliohandler.NewAnalyzeHandler(analyzeUC)
	publicH := publichandler.NewPublicHandler(publicUC)

	// ルータ生成
	r := router.NewRouter(analyzeH, publicH, m, router.Options{JWTSecret: cfg.JWTSecret})

	if !cfg.AuthEnabled() {
		slog.Warn("PA_JWT_SECRET is not set; API routes are unauthenticated")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "model", gen.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
