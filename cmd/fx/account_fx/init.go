package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/metrics"
	"sportapp/internal/repositories"
	"sportapp/internal/services"
	"sportapp/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAccountRepo, provideProfileRepo, provideAccountService)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	tokens *utils.TokenIssuer,
	metricsManager *metrics.Manager,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, tokens, metricsManager, log)
}
