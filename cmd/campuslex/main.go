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

	"golang.org/x/sync/errgroup"

	"github.com/campuslex/campuslex/internal/analysis"
	"github.com/campuslex/campuslex/internal/app"
	"github.com/campuslex/campuslex/internal/auth"
	"github.com/campuslex/campuslex/internal/enrollment"
	"github.com/campuslex/campuslex/internal/observability"
	"github.com/campuslex/campuslex/internal/platform/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	codec := auth.NewTokenCodec(cfg.TokenSecret, cfg.TokenTTL)
	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo)
	authMiddleware := auth.Middleware{Service: authService, Codec: codec, Logger: logger}
	authHandler := auth.NewHandler(logger, authService, codec)

	enrollmentRepo := enrollment.NewRepository(pool)
	enrollmentService := enrollment.NewService(enrollmentRepo)
	enrollmentHandler := enrollment.NewHandler(logger, enrollmentService, authMiddleware, !cfg.IsProduction())

	analysisHandler := analysis.NewHandler(logger, authMiddleware, cfg.MaxUploadBytes)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthHandler:       authHandler,
		EnrollmentHandler: enrollmentHandler,
		AnalysisHandler:   analysisHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
