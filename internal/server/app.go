// Package server wires the auth and reward servers: database and migrations,
// services, the gRPC listener and the metrics listener, plus graceful
// shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mango-services/loyalty-auth/internal/logging"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
	"github.com/mango-services/loyalty-auth/internal/server/auth"
	"github.com/mango-services/loyalty-auth/internal/server/config"
	"github.com/mango-services/loyalty-auth/internal/server/metrics"
	"github.com/mango-services/loyalty-auth/internal/server/migrations"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/repomanager"
	"github.com/mango-services/loyalty-auth/internal/server/services"
	"github.com/mango-services/loyalty-auth/internal/timex"
	"google.golang.org/grpc"

	gs "github.com/mango-services/loyalty-auth/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics
	server  *gs.Server
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func prepareDB(ctx context.Context, c *config.Config, rm repomanager.RepositoryManager, dir string) (*sql.DB, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db, dir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return db, nil
}

func newLogger() logging.Logger {
	return logging.NewJSON(os.Stdout, slog.LevelInfo)
}

// NewAuthApp builds the credential and session server.
func NewAuthApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := newLogger().With("service", "auth")

	rm := repomanager.NewPostgresRepositoryManager()
	db, err := prepareDB(ctx, c, rm, migrations.AuthDir)
	if err != nil {
		return nil, err
	}

	us := services.NewUserService(db, rm, c, timex.SystemClock{}, nil, logger)
	handler := gs.NewAuthServer(us, logger)

	m := metrics.New("auth")
	limiter := gs.NewPeerRateLimiter(c.LoginRateLimit, c.LoginRateBurst)

	srv := gs.NewServer(c.EndpointAddrGRPC, logger,
		func(r grpc.ServiceRegistrar) { pb.RegisterAuthServiceServer(r, handler) },
		m.UnaryServerInterceptor(),
		limiter.Interceptor(gs.AuthThrottledMethods),
	)

	return &App{config: c, logger: logger, db: db, metrics: m, server: srv}, nil
}

// NewRewardApp builds the reward ledger server.
func NewRewardApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := newLogger().With("service", "rewards")

	rm := repomanager.NewPostgresRepositoryManager()
	db, err := prepareDB(ctx, c, rm, migrations.RewardsDir)
	if err != nil {
		return nil, err
	}

	rs := services.NewRewardService(db, rm, services.NewS3ImageStore(c), timex.SystemClock{}, logger)
	handler := gs.NewRewardServer(rs, logger)

	m := metrics.New("rewards")
	verifier := auth.NewVerifier([]byte(c.SecretKey), c.JWTIssuer, c.JWTAudience, nil)

	srv := gs.NewServer(c.EndpointAddrGRPC, logger,
		func(r grpc.ServiceRegistrar) { pb.RegisterRewardServiceServer(r, handler) },
		m.UnaryServerInterceptor(),
		gs.AccessTokenInterceptor(verifier, gs.RewardProtectedMethods),
	)

	return &App{config: c, logger: logger, db: db, metrics: m, server: srv}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.MetricsAddr == "" {
		return
	}
	if err := app.metrics.Serve(ctx, app.config.MetricsAddr, app.logger); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a listener fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
