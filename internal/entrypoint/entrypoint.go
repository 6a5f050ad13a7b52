package entrypoint

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
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/config"
	http_controllers "github.com/mrlokans/storefront/internal/http"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/scheduler"
	"github.com/mrlokans/storefront/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	}
	log.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work first so no import starts during shutdown
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

// Run starts the HTTP server with the task queue and the import schedule.
func Run(cfg *config.Config, version string, log *zap.Logger) error {
	log.Info("starting storefront", zap.String("version", version))

	app, err := NewApp(cfg.Database.Path, importers.WriteModeFor(cfg.Import.Atomic), os.Stdout, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	taskCfg := tasks.DefaultConfig()
	taskCfg.TaskTimeout = cfg.Tasks.TaskTimeout
	taskCfg.ReleaseAfter = cfg.Tasks.ReleaseAfter
	taskCfg.CleanupInterval = cfg.Tasks.CleanupInterval

	taskClient, err := tasks.NewClient(cfg.Database.Path, taskCfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize task queue: %w", err)
	}
	defer func() {
		if err := taskClient.Close(); err != nil {
			log.Error("error closing task client", zap.Error(err))
		}
	}()

	taskClient.Register(
		tasks.NewImportDirectoryQueue(app.Pipeline, taskCfg.TaskTimeout, log),
	)

	taskCtx, taskCtxCancel := context.WithCancel(context.Background())
	defer taskCtxCancel()
	go taskClient.Start(taskCtx)

	importScheduler := scheduler.NewImportScheduler(taskClient, cfg.Import.Dir, cfg.Import.Schedule, log)
	if err := importScheduler.Start(taskCtx); err != nil {
		return err
	}

	if cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:  app.DB,
		Importer:  app.Pipeline,
		Exporter:  app.Shipping,
		TaskQueue: taskClient,
		ImportDir: cfg.Import.Dir,
		Version:   version,
		Logger:    log,
	})

	onShutdown := func(ctx context.Context) {
		importScheduler.Stop()
		taskClient.Stop(ctx)
		taskCtxCancel()
	}

	return Serve(router, cfg, log, onShutdown)
}
