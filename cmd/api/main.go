package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	grpcadp "magicbank-loan-engine/internal/adapter/grpc"
	httpadp "magicbank-loan-engine/internal/adapter/http"
	"magicbank-loan-engine/internal/adapter/middleware"
	"magicbank-loan-engine/internal/config"
	"magicbank-loan-engine/internal/domain/underwriting"
	"magicbank-loan-engine/internal/infrastructure/cache"
	"magicbank-loan-engine/internal/infrastructure/logger"
	"magicbank-loan-engine/internal/infrastructure/metrics"
	"magicbank-loan-engine/internal/usecase/scoring"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	uc := scoring.NewUsecase(underwriting.NewEngine(), m, log)

	rc := httpadp.RouterConfig{
		Scoring:          uc,
		Logger:           log,
		Metrics:          m.Handler(),
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	}
	if cfg.IdempotencyEnabled() {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		rc.Idempotency = middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log)
		log.Info("idempotency enabled", "redis", cfg.RedisAddr, "ttl", cfg.IdempotencyTTL())
	}
	e := httpadp.NewRouter(rc)

	var gs *grpcadp.Server
	if cfg.GRPCAddr() != "" {
		gs = grpcadp.NewServer(grpcadp.NewUnderwritingHandler(uc), log)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", cfg.HTTPAddr())
		if err := e.Start(cfg.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if gs != nil {
		g.Go(func() error { return gs.ListenAndServe(cfg.GRPCAddr()) })
	}
	// first failure or a signal stops both servers
	g.Go(func() error {
		<-gctx.Done()
		shutdown(e, gs, log)
		return nil
	})
	return g.Wait()
}

func shutdown(e *echo.Echo, gs *grpcadp.Server, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if gs != nil {
		gs.GracefulStop()
	}
	if err := e.Shutdown(ctx); err != nil {
		log.Error("http shutdown", "error", err)
	}
}
