package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/joseph-ayodele/invoice-studio/internal/common"
	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
	"github.com/joseph-ayodele/invoice-studio/internal/llm"
	"github.com/joseph-ayodele/invoice-studio/internal/llm/gemini"
	"github.com/joseph-ayodele/invoice-studio/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-studio/internal/render"
	"github.com/joseph-ayodele/invoice-studio/internal/server"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Extraction provider
	var extractor llm.FieldExtractor
	switch cfg.LLM.Provider {
	case "openai":
		extractor = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, slogger)
	default:
		extractor = gemini.NewClient(gemini.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, slogger)
	}
	extractSvc := invoice.NewService(extractor, cfg.LLM.Timeout, slogger)

	renderer := render.NewRenderer(render.Sender{
		Name:   cfg.Render.SenderName,
		Street: cfg.Render.SenderStreet,
		City:   cfg.Render.SenderCity,
	}, slogger)

	svc := server.NewService(extractSvc, renderer, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("http serving on %s (provider=%s)", cfg.Server.HTTPAddr, cfg.LLM.Provider)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	log.Info("stopped.")
}
