package controllers_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"sportapp/internal/api/controllers"
	"sportapp/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewWorkoutController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideDatabasePing))

func provideDatabasePing(db *gorm.DB) controllers.PingFunc {
	return func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	}
}
