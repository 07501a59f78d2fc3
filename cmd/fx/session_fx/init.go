package session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/metrics"
	"sportapp/internal/repositories"
	"sportapp/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.ISessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(
	sessionRepo repositories.ISessionRepository,
	planRepo repositories.IPlanRepository,
	metricsManager *metrics.Manager,
	cfg *config.Config,
	log *zap.Logger,
) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, planRepo, metricsManager, cfg.Stats.Timezone, log)
}
