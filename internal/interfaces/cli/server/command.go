package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/migration"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/EDUARX24/Tickets-AI/internal/interfaces/http"
	"github.com/EDUARX24/Tickets-AI/internal/shared/goroutine"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk web application with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup (SQL drivers only)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Load(env)
	if err != nil {
		return err
	}

	log.Infow("starting server",
		"environment", env,
		"database_driver", cfg.Database.Driver,
		"session_store", cfg.Session.Store,
		"auto_migrate", autoMigrate,
	)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debugw("route registered", "method", httpMethod, "path", absolutePath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := httpRouter.NewContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	router, err := httpRouter.NewRouter(container)
	if err != nil {
		container.Shutdown()
		return err
	}
	defer router.Shutdown()

	if autoMigrate {
		if err := migrateOnStartup(ctx, container, log); err != nil {
			return err
		}
	}

	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
	serveErr := goroutine.Go(log, "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func migrateOnStartup(ctx context.Context, container *httpRouter.Container, log logger.Interface) error {
	db := container.DB()
	if db == nil {
		log.Warnw("auto-migrate ignored, the REST gateway has no schema to migrate")
		return nil
	}

	strategy, err := migration.NewStrategy(container.Config().Database.Driver, db, log)
	if err != nil {
		return err
	}
	if err := strategy.Up(ctx); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	log.Infow("auto-migration completed", "strategy", strategy.Name())
	return nil
}
