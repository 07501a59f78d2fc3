package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/config"
	"sportapp/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(context.Background(), cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Database.AutoMigrate {
				return nil
			}
			log.Info("running auto migration")
			return infra.Migrate(ctx, db)
		},
		OnStop: func(context.Context) error {
			return infra.ClosePostgresql(db)
		},
	})
	return db, nil
}
