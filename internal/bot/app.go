// Package bot bootstraps infrastructure and wires the registration flow to
// the Telegram transport.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/config"
	"github.com/iteachuz/enrollbot/internal/database"
	"github.com/iteachuz/enrollbot/internal/logger"
	"github.com/iteachuz/enrollbot/internal/registration"
	"github.com/iteachuz/enrollbot/internal/storage"
	"github.com/iteachuz/enrollbot/internal/telegram"
	"github.com/iteachuz/enrollbot/internal/telegram/middleware"
)

// App aggregates the wired application components.
type App struct {
	Config        *config.Config
	DB            *sqlx.DB
	Registrations *storage.Registrations
	Flow          *registration.Flow

	notifier *adminNotifier
}

// Bootstrap initializes logging, connects to the database, applies
// migrations, and wires the registration flow.
func Bootstrap(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	if err := logger.Init(logger.Settings{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Profile: cfg.Logging.Profile,
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}
	if err := database.RunMigrations(cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	repo := storage.NewRegistrations(db)
	notifier := newAdminNotifier(cfg.Telegram.AdminID)
	flow := registration.NewFlow(
		registration.NewMemoryStore(),
		&recorder{repo: repo},
		notifier,
	)

	return &App{
		Config:        cfg,
		DB:            db,
		Registrations: repo,
		Flow:          flow,
		notifier:      notifier,
	}, nil
}

// RunOptions assembles the transport wiring: middleware chain, command
// registry, and routes.
func (a *App) RunOptions() telegram.RunOptions {
	cfg := a.Config

	adminOnly := middleware.AdminOnly(middleware.AdminOptions{AdminID: cfg.Telegram.AdminID})

	reg := telegram.NewRegistry()
	reg.RegisterCommand("/start", telegram.Command{
		Handler:     a.startHandler,
		Description: "Ro‘yxatdan o‘tishni boshlash",
	})
	reg.RegisterCommand("/cancel", telegram.Command{
		Handler:     a.cancelHandler,
		Description: "Jarayonni bekor qilish",
	})
	reg.RegisterCommand("/stats", telegram.Command{
		Handler:     adminOnly(a.statsHandler),
		Description: "Ro‘yxatdan o‘tganlar soni",
		Hidden:      true,
	})

	routes := []telegram.Route{
		{Endpoint: tele.OnCallback, Handler: a.callbackHandler},
		{Endpoint: tele.OnText, Handler: a.textHandler},
		{Endpoint: tele.OnContact, Handler: a.contactHandler},
	}

	middlewares := []telegram.Middleware{
		{Name: "recover", Use: middleware.Recover},
		{Name: "logging", Use: middleware.Logging},
	}
	if cfg.RateLimit.IntervalMS > 0 {
		exclude := make(map[string]struct{}, len(cfg.RateLimit.ExcludeUpdates))
		for _, k := range cfg.RateLimit.ExcludeUpdates {
			exclude[k] = struct{}{}
		}
		middlewares = append(middlewares, telegram.Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimit(middleware.RateLimitOptions{
				Interval: time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
				Exclude:  exclude,
			}),
		})
	}

	return telegram.RunOptions{
		Config:      cfg,
		Registry:    reg,
		Middlewares: middlewares,
		Routes:      routes,
		OnStart: func(ctx context.Context, b *tele.Bot) error {
			a.notifier.Attach(b)
			return nil
		},
		OnStop: func(ctx context.Context, b *tele.Bot) error {
			return a.DB.Close()
		},
	}
}
