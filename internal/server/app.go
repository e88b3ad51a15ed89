// Package server wires the gophauth server together: configuration, the
// credential store, the auth service and the HTTP and gRPC endpoints. It
// also owns signal handling and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/httpapi"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const closeTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       repomanager.RepositoryManager
	userService *services.UserService
	metrics     *metrics.Metrics
}

// NewApp opens the store named by the configuration, prepares its schema and
// builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	store, err := repomanager.NewRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(ctx, c, logger, store)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, store repomanager.RepositoryManager) (*App, error) {
	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(
		store.Users(),
		auth.NewBcryptHasher(c.PasswordHashCost),
		auth.NewTokenCodec([]byte(c.SecretKey), c.TokenValidityDuration),
		logger,
	)

	return &App{config: c, logger: logger, store: store, userService: us, metrics: metrics.New()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Handler returns the HTTP API.
func (app *App) Handler() *gin.Engine {
	if app.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return httpapi.NewRouter(httpapi.Options{
		Users:          app.userService,
		Store:          app.store,
		Metrics:        app.metrics,
		Logger:         app.logger,
		AllowedOrigins: app.config.AllowedOrigins,
		Cookie: httpapi.CookieOptions{
			Production: app.config.IsProduction(),
			Domain:     app.config.CookieDomain,
			MaxAge:     app.config.TokenValidityDuration,
		},
	})
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.Handler(), app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.store, app.config.HealthCheckInterval, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a server fails,
// then closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := app.store.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "store close error", "error", err)
	}

	app.logger.Info(closeCtx, "App stopped")
}
