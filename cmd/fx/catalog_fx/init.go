package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/repositories"
	"sportapp/internal/services"
	"sportapp/internal/storage"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	planRepo repositories.IPlanRepository,
	sessionRepo repositories.ISessionRepository,
	files storage.FileStorage,
	cfg *config.Config,
	log *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, sessionRepo, files, cfg.S3.PresignExpiry, log)
}
