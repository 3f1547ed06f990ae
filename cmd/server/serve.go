package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/config"
	"github.com/sabidos/sabidos-api/internal/database"
	"github.com/sabidos/sabidos-api/internal/server"
	"github.com/sabidos/sabidos-api/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "run database migrations before serving")

	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Run migrations
	if migrate {
		if err := database.MigrateDatabase(db); err != nil {
			return err
		}
		logger.Info("migrations applied", zap.String("driver", cfg.DBDriver))
	}

	verifier, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		return err
	}

	// Initialize AI service
	var generator services.FlashcardGenerator
	if cfg.OpenAIAPIKey != "" {
		generator = services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	router := server.NewRouter(server.Deps{
		DB:          db,
		Verifier:    verifier,
		Generator:   generator,
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

// newVerifier picks the dev HMAC verifier when AUTH_DEV_SECRET is set,
// Firebase otherwise
func newVerifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Verifier, error) {
	if cfg.AuthDevSecret != "" {
		logger.Warn("using development token verifier; do not enable in production")
		return auth.NewHMACVerifier(cfg.AuthDevSecret), nil
	}
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required unless AUTH_DEV_SECRET is set")
	}
	keys, err := auth.NewRemoteJWKSource(ctx, cfg.FirebaseJWKSURL)
	if err != nil {
		return nil, err
	}
	return auth.NewFirebaseVerifier(cfg.FirebaseProjectID, keys), nil
}
