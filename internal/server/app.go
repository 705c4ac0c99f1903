// Package server initializes and runs the finances gRPC server. It opens the
// database, applies migrations, builds the services and stops gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/finances/internal/cryptox"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/config"
	"github.com/dmitrijs2005/finances/internal/server/notify"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/finances/internal/server/services"
	"github.com/dmitrijs2005/finances/internal/telemetry"

	gs "github.com/dmitrijs2005/finances/internal/server/grpc"
)

const serviceName = "finances-server"

var openDB = sql.Open

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services gs.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := openDB("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	app, err := newApp(ctx, c, db, repomanager.NewPostgresRepositoryManager(), logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger) (*App, error) {
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	notifier, err := notify.New(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("notifier init error: %w", err)
	}

	hasher := cryptox.NewBcryptHasher(c.BcryptCost)
	codes := services.NewCodeManager(db, rm)
	graph := services.NewContactGraph(db, rm, logger)
	accounts := services.NewAccountService(db, rm, codes, graph, hasher, notifier, logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		services: gs.Services{
			Accounts:   accounts,
			Auth:       services.NewAuthService(db, rm, accounts, hasher, c, logger),
			Contacts:   graph,
			Invites:    services.NewInviteService(db, rm, graph, logger),
			Categories: services.NewCategoryService(db, rm),
			Releases:   services.NewReleaseService(db, rm),
			Avatars:    services.NewAvatarService(c),
		},
	}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, app.config.OTelEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := shutdownTracing(context.Background()); err != nil {
		app.logger.Warn(ctx, "tracing shutdown", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
