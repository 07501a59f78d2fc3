package storage_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"sportapp/internal/config"
	"sportapp/internal/storage"
)

var Module = fx.Provide(provideFileStorage)

func provideFileStorage(cfg *config.Config, log *zap.Logger) (storage.FileStorage, error) {
	if !cfg.S3.Enabled() {
		log.Info("s3 bucket not configured, plan images disabled")
		return storage.NewDisabledStorage(), nil
	}
	return storage.NewS3Storage(context.Background(), cfg.S3, log)
}
