package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"skill-track/internal/config"
	"skill-track/internal/database/migration"
	"skill-track/internal/database/seeder"
	"skill-track/internal/delivery/http/middleware"
	"skill-track/internal/delivery/http/routes"
	"skill-track/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.MigrateOnStart {
		migCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		r := migration.Runner{Dir: "migrations"}
		if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migration: %w", err)
		}
	}

	if cfg.Database.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
		if err := r.Run(seedCtx, c.DB); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
