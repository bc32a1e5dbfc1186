package v1

import (
	"log"

	"skill-track/internal/config"
	"skill-track/internal/database"
	"skill-track/internal/delivery/http/handler"
	"skill-track/internal/infrastructure/cache"
	"skill-track/internal/repository"
	"skill-track/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	skillRepo := repository.NewPostgresSkillRepository(db)
	cloRepo := repository.NewPostgresCloRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	studentRepo := repository.NewPostgresStudentRepository(db)
	collectionRepo := repository.NewPostgresSkillCollectionRepository(db, cfg.Import.UpdateChunkSize)
	assessmentRepo := repository.NewPostgresSkillAssessmentRepository(db)
	statusRepo := repository.NewPostgresStatusRepository(db)

	var treeCache usecase.TreeCache
	if c != nil {
		treeCache = c
	}

	treeUC := usecase.NewSkillTreeUsecase(skillRepo, cloRepo, collectionRepo, treeCache, logger)
	assessmentUC := usecase.NewAssessmentUsecase(treeUC, assessmentRepo)
	importUC := usecase.NewSkillImportUsecase(courseRepo, cloRepo, studentRepo, collectionRepo, treeUC, assessmentUC, logger)
	skillUC := usecase.NewSkillUsecase(skillRepo, treeUC)
	statusUC := usecase.NewStatusUsecase(statusRepo, db, c)

	handler.NewSkillHandler(skillUC).RegisterRoutes(r)
	handler.NewSkillTreeHandler(treeUC).RegisterRoutes(r)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(r)
	handler.NewSkillImportHandler(importUC).RegisterRoutes(r)
	handler.NewStatusHandler(statusUC).RegisterRoutes(r)
}
