package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/storage_mock.go -package=mocks

const DefaultPresignedURLExpiry = 15 * time.Minute

var ErrStorageDisabled = errors.New("object storage is not configured")

// FileStorage is the object store holding workout plan images.
type FileStorage interface {
	// GeneratePresignedUploadURL returns a URL accepting a single PUT of objectKey.
	// The uploader must send the same Content-Type header.
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func IsSupportedImageType(contentType string) bool {
	_, ok := imageExtensions[strings.ToLower(contentType)]
	return ok
}

// PlanImageKey builds a fresh object key for a plan image. Every upload gets a
// new key so cached URLs of a previous image never serve the new one.
func PlanImageKey(planID uint, contentType string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}
	return path.Join("workout_images", fmt.Sprintf("%d", planID), uuid.NewString()+ext), nil
}

type disabledStorage struct{}

// NewDisabledStorage is used when no bucket is configured; every call fails with ErrStorageDisabled.
func NewDisabledStorage() FileStorage { return disabledStorage{} }

func (disabledStorage) GeneratePresignedUploadURL(context.Context, string, string, time.Duration) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledStorage) GeneratePresignedDownloadURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledStorage) DeleteObject(context.Context, string) error { return ErrStorageDisabled }
