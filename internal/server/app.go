// Package server wires the account registry together: it opens the configured
// store, builds the account service and runs the gRPC and metrics endpoints
// until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/logging"
	"github.com/dmitrijs2005/accountregistry/internal/server/config"
	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountregistry/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gs "github.com/dmitrijs2005/accountregistry/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          repomanager.RepositoryManager
	accountService *services.AccountService
	registry       *prometheus.Registry
	metrics        *gs.Metrics
}

// NewApp validates c, opens and migrates the store and builds the service
// graph. The caller must eventually call Run, which closes the store.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	repos, err := repomanager.NewRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return newApp(ctx, c, logger, repos)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, repos repomanager.RepositoryManager) (*App, error) {
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("storage migration error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := gs.NewMetrics(registry)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	return &App{
		config:         c,
		logger:         logger,
		repos:          repos,
		accountService: services.NewAccountService(repos.Accounts()),
		registry:       registry,
		metrics:        metrics,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accountService, app.config.RequestTimeout, app.metrics)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func (app *App) startMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{Registry: app.registry}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", app.config.MetricsAddr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled, a termination signal arrives or an
// endpoint fails, then closes the store. A failing endpoint stops the others.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageType)

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, "endpoint failed", "endpoint", name, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	run("grpc", app.startGRPCServer)
	if app.config.MetricsAddr != "" {
		run("metrics", app.startMetricsServer)
	}

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(errs...)
}
