package dashboard_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/repositories"
	"sportapp/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, cfg *config.Config, log *zap.Logger) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, cfg.Stats.Timezone, log)
}
