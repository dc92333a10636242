// Package server initializes and runs the portfolio backend: it wires
// the encrypted stores, the credential service and the HTTP API, and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/dmitrijs2005/foliovault/internal/server/httpapi"
	"github.com/dmitrijs2005/foliovault/internal/server/mail"
	"github.com/dmitrijs2005/foliovault/internal/server/migrations"
	"github.com/dmitrijs2005/foliovault/internal/server/projects"
	"github.com/dmitrijs2005/foliovault/internal/server/sections"
	"github.com/dmitrijs2005/foliovault/internal/server/team"
	"github.com/dmitrijs2005/foliovault/internal/server/users"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *users.Service
	projectService *projects.Service
	sectionService *sections.Service
	teamService    *team.Service
	httpServer     *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app := &App{config: c, logger: logger}

	repo, err := app.initUserRepository()
	if err != nil {
		return nil, err
	}

	us, err := users.NewService(repo, c, logger)
	if err != nil {
		return nil, fmt.Errorf("user service init error: %w", err)
	}
	app.userService = us

	contentKey := cryptox.DeriveKey(c.DBEncryptionKey)
	app.projectService = projects.NewService(c.DataDir, contentKey, logger)
	app.sectionService = sections.NewService(c.DataDir, contentKey, logger)
	app.teamService = team.NewService(c.DataDir, contentKey, logger)

	var mailer mail.Mailer
	if c.SMTPAddr != "" {
		mailer = mail.NewSMTPMailer(c.SMTPAddr, c.SMTPFrom)
	} else {
		mailer = mail.NewLogMailer(logger)
	}

	app.httpServer = httpapi.NewServer(c, us, app.projectService,
		app.sectionService, app.teamService, mailer, logger)

	return app, nil
}

// initUserRepository picks the user store: PostgreSQL when a DSN is
// configured (applying pending migrations), the encrypted users file
// otherwise.
func (app *App) initUserRepository() (users.Repository, error) {
	if app.config.DatabaseDSN == "" {
		key := cryptox.DeriveKey(app.config.AuthEncryptionKey)
		return users.NewFileRepository(app.config.DataDir, key, app.logger), nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := migrations.Run(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	app.db = db
	return users.NewPostgresRepository(db), nil
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

// seedData makes a fresh installation usable: the documented admin
// account and the placeholder sections. Both calls are idempotent.
func (app *App) seedData(ctx context.Context) {
	if err := app.userService.BootstrapDefaultAdmin(ctx); err != nil {
		app.logger.Error(ctx, "error initializing default admin", "error", err)
	}
	if err := app.sectionService.InitializeDefaults(ctx); err != nil {
		app.logger.Error(ctx, "error initializing default sections", "error", err)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.httpServer.Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(context.Background(), "http shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.seedData(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
}
