package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/HarshitaThota/OneiroNet-AI/internal/adapters/http"
	"github.com/HarshitaThota/OneiroNet-AI/internal/adapters/llm/openrouter"
	"github.com/HarshitaThota/OneiroNet-AI/internal/adapters/lore"
	"github.com/HarshitaThota/OneiroNet-AI/internal/app"
	"github.com/HarshitaThota/OneiroNet-AI/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	loreStore := lore.NewEmbeddedStore()

	generator := openrouter.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		openrouter.Config{
			APIKey:         cfg.OpenRouterAPIKey,
			BaseURL:        cfg.OpenRouterBaseURL,
			Model:          cfg.LLMModel,
			FallbackModels: cfg.LLMFallbackModels,
			Temperature:    cfg.LLMTemperature,
			MaxTokens:      cfg.LLMMaxTokens,
		},
		logger,
	)

	svc := app.NewDreamService(generator, loreStore, cfg.LLMTimeout, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
