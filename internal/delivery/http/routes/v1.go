package routes

import (
	"log"

	"skill-track/internal/config"
	"skill-track/internal/database"
	v1 "skill-track/internal/delivery/http/routes/v1"
	"skill-track/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, c, logger)
}
