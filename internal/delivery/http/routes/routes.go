package routes

import (
	"log"

	"skill-track/internal/config"
	"skill-track/internal/database"
	"skill-track/internal/delivery/http/handler"
	"skill-track/internal/infrastructure/cache"
	"skill-track/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	wsh    *ws.Handler

	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		wsh:    ws.NewHandler(hub, logger),
		cfg:    cfg,
		db:     db,
		cache:  c,
		logger: logger,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/ws/assessments", r.wsh.HandleAssessmentsWS)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
