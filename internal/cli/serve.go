package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/volunteerhub-dev/volunteerhub/db"
	"github.com/volunteerhub-dev/volunteerhub/internal/auth"
	"github.com/volunteerhub-dev/volunteerhub/internal/config"
	"github.com/volunteerhub-dev/volunteerhub/internal/handlers"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/middleware"
	"github.com/volunteerhub-dev/volunteerhub/internal/realtime"
	"github.com/volunteerhub-dev/volunteerhub/internal/router"
	"github.com/volunteerhub-dev/volunteerhub/internal/services"
	"github.com/volunteerhub-dev/volunteerhub/internal/store"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			if skip, _ := cmd.Flags().GetBool("skip-migrate"); skip {
				cfg.AutoMigrate = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	cmd.Flags().Bool("skip-migrate", false, "Do not migrate the schema on startup")

	return cmd
}

// NewServer assembles the services and router on top of gdb.
func NewServer(cfg *config.Config, gdb *gorm.DB, stopCleanup <-chan struct{}) (*gin.Engine, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenExpirationWeeks)
	if err != nil {
		return nil, err
	}

	s := store.New(gdb)
	hub := realtime.NewHub(cfg.AllowedOrigins)
	users := services.NewUserService(s, tokens)
	images := services.NewImageService(cfg.UploadDir, cfg.UploadURLPrefix)

	h := handlers.New(handlers.Deps{
		Store:        s,
		Users:        users,
		Projects:     services.NewProjectService(s),
		Applications: services.NewApplicationService(s, hub),
		Analytics:    services.NewAnalyticsService(s),
		Images:       images,
		Hub:          hub,
		Domain:       cfg.Domain,
		TokenTTL:     tokens.TTL(),
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter.StartCleanup(10*time.Minute, stopCleanup)
	}

	return router.NewRouter(router.Config{
		Handler:         h,
		Authenticator:   users,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimiter:     limiter,
		UploadDir:       images.Dir(),
		UploadURLPrefix: cfg.UploadURLPrefix,
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := log.WithComponent("server")
	gin.SetMode(gin.ReleaseMode)

	gdb, err := db.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := db.MigrateDatabase(gdb); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info().Msg("Database migrated")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)

	engine, err := NewServer(cfg, gdb, stopCleanup)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}

	return nil
}
