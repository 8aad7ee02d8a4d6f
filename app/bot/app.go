package bot

import (
	"context"
	"fmt"

	"catalogbot/app/catalog"
	"catalogbot/app/news"
	coreconfig "catalogbot/core/config"
	"catalogbot/core/database"
	"catalogbot/core/logger"
	coretelegram "catalogbot/core/telegram"
	"catalogbot/core/telegram/router"
	"catalogbot/core/telegram/sender"

	"github.com/jmoiron/sqlx"
)

// App is the assembled application: configuration, stores, handlers, and the
// outbound dispatcher. It satisfies the runner's TelegramApp interface.
type App struct {
	cfg  *coreconfig.Config
	bot  *Bot
	disp *sender.Dispatcher
	db   *sqlx.DB
}

// Bootstrap initializes logging, builds the configured stores, and wires the
// handler set. For the postgres source it also runs migrations and seeds an
// empty database from the JSON files.
func Bootstrap(cfg *coreconfig.Config) (*App, error) {
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("bootstrap: logger: %w", err)
	}

	var (
		catStore  catalog.Store
		newsStore news.Store
		db        *sqlx.DB
	)

	switch cfg.Catalog.Source {
	case coreconfig.SourcePostgres:
		if err := database.RunMigrations(cfg.Database); err != nil {
			return nil, fmt.Errorf("bootstrap: migrations: %w", err)
		}
		var err error
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database: %w", err)
		}
		ctx := context.Background()
		if err := catalog.SeedFromFile(ctx, db, cfg.Catalog.ProductsFile); err != nil {
			db.Close()
			return nil, err
		}
		if err := news.SeedFromFile(ctx, db, cfg.Catalog.NewsFile); err != nil {
			db.Close()
			return nil, err
		}
		catStore = catalog.NewPostgresStore(db)
		newsStore = news.NewPostgresStore(db)
	default:
		catStore = catalog.NewFileStore(cfg.Catalog.ProductsFile)
		newsStore = news.NewFileStore(cfg.Catalog.NewsFile)
	}

	disp := sender.NewDispatcher(sender.Options{})

	return &App{
		cfg:  cfg,
		bot:  New(cfg, catStore, newsStore, disp),
		disp: disp,
		db:   db,
	}, nil
}

// TelegramRunOptions assembles the registry, routes, and middleware chain.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.bot.Register(reg)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes,
		router.CallbackRoute(reg, router.CallbackOptions{}),
		router.TextRoute(reg, router.TextOptions{UnknownText: a.bot.HandleUnknownText}),
	)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Dispatcher:  a.disp,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}
