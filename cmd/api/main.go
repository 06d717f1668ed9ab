// Command tradepost runs the HTTP API and its operational tooling.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradepost/backend/internal/config"
	"github.com/tradepost/backend/internal/database"
	"github.com/tradepost/backend/internal/handler"
	"github.com/tradepost/backend/internal/lib/utils"
	"github.com/tradepost/backend/internal/logger"
	"github.com/tradepost/backend/internal/middleware"
	"github.com/tradepost/backend/internal/repository"
	"github.com/tradepost/backend/internal/router"
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "tradepost",
		Short:         "Tradepost commerce API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run database migrations and start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			loggerService := logger.NewLoggerService(cfg)
			defer loggerService.Shutdown(shutdownTimeout)

			return database.Migrate(cmd.Context(), loggerService.GetLogger(), cfg)
		},
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg)
	defer loggerService.Shutdown(shutdownTimeout)

	appLogger := loggerService.GetLogger()

	// Schema first. Serving migrates on boot so a fresh environment comes
	// up in one step; the migrate subcommand exists for pipelines that
	// want it decoupled.
	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(migrateCtx, appLogger, cfg); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}

	// The publish sweep needs the post service, which does not exist yet
	// when the job server boots inside server.New, so the scheduler only
	// starts here.
	if err := srv.Job.StartScheduler(services.Posts); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(middlewares, handlers)

	if cfg.Primary.Env == "local" {
		// Route table on boot, handy when wiring new endpoints.
		utils.PrintJSON(e.Routes())
	}

	srv.SetupHTTPServer(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.StartHealthMonitor(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	appLogger.Info().Msg("shutdown complete")

	return nil
}
