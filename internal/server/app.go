// Package server initializes and runs the notes application server.
// It opens the database, runs migrations, wires services, and starts the
// HTTP endpoint with graceful shutdown on OS signals.
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

	"github.com/arijitp/notekeeper/internal/logging"
	"github.com/arijitp/notekeeper/internal/server/config"
	"github.com/arijitp/notekeeper/internal/server/httpapi"
	"github.com/arijitp/notekeeper/internal/server/mail"
	"github.com/arijitp/notekeeper/internal/server/repositories/repomanager"
	"github.com/arijitp/notekeeper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
	noteService *services.NoteService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	mailer := selectMailer(c, logger)

	as := services.NewAuthService(db, rm, mailer, c)
	ns := services.NewNoteService(db, rm)

	return &App{config: c, logger: logger, db: db, authService: as, noteService: ns}, nil
}

func selectMailer(c *config.Config, logger logging.Logger) mail.Mailer {
	if c.MailProvider == "sendgrid" {
		return mail.NewSendGridMailer(c.SendGridAPIKey, c.MailFromEmail, c.MailFromName)
	}
	return mail.NewLogMailer(logger)
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.authService, app.noteService, app.config.RequestTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
