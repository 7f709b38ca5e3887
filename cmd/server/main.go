package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/carecompanion/internal/agents"
	"github.com/example/carecompanion/internal/api"
	"github.com/example/carecompanion/internal/cache"
	"github.com/example/carecompanion/internal/config"
	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/observability"
	"github.com/example/carecompanion/internal/orchestrator"
	"github.com/example/carecompanion/internal/providers/explainer"
	"github.com/example/carecompanion/internal/providers/llm"
	"github.com/example/carecompanion/internal/providers/ocr"
	"github.com/example/carecompanion/internal/providers/pricing"
	"golang.org/x/net/netutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Environment, cfg.App.LogLevel)
	logger := observability.GetLogger()

	ctx := context.Background()

	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.App.Version, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize tracing, continuing without it")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("error shutting down tracer provider")
				}
			}()
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize metrics, continuing without them")
		metrics = observability.NoopMetrics()
	}

	lat := latency.New(cfg.Pipeline.LatencyScale)

	engine, err := ocr.New(cfg.Pipeline.OCRProvider, lat)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize OCR engine")
	}

	heuristic := explainer.NewHeuristic(lat)
	var explain agents.ExplanationProvider = heuristic
	if cfg.Pipeline.ExplainerProvider == "llm" {
		client, err := llm.New(ctx, cfg.LLM)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize LLM client")
		}
		if c, ok := client.(io.Closer); ok {
			defer c.Close()
		}
		explain = explainer.NewLLM(client, heuristic)
		logger.Info().Str("client", client.Name()).Msg("LLM explainer enabled")
	}

	var prices agents.PricingProvider = pricing.NewStatic(lat)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, pricing lookups will not be cached")
		} else {
			defer redisClient.Close()
			prices = &pricing.Cached{
				Next:    prices,
				Cache:   redisClient,
				TTL:     cfg.Redis.CacheTTL,
				Metrics: metrics,
			}
			logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("pricing cache enabled")
		}
	}

	coordinator := orchestrator.New(
		agents.NewExtractionStage(engine, cfg.Pipeline.StrictImageValidation, cfg.Pipeline.OCRLanguages),
		agents.NewExplanationStage(explain, lat),
		agents.NewResourceStage(prices, lat),
		agents.NewPlanningStage(),
		agents.NewStageExecutor(metrics),
		&agents.HandoffVerifier{},
		metrics,
	)

	srv := api.NewServer(coordinator, cfg.App, cfg.Upload)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      srv.Handler(cfg.Server, metrics),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("failed to listen")
	}
	if cfg.Server.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConnections)
	}

	go func() {
		logger.Info().
			Str("addr", addr).
			Str("ocr", engine.Name()).
			Float64("latency_scale", cfg.Pipeline.LatencyScale).
			Msgf("%s %s listening", cfg.App.ProjectName, cfg.App.Version)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGracePeriod)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}
	logger.Info().Msg("server stopped")
}
