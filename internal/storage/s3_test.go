package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sportapp/internal/config"
)

func newTestS3(t *testing.T) FileStorage {
	t.Helper()
	s, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "plans",
		UsePathStyle:    true,
	}, zap.NewNop())
	require.NoError(t, err)
	return s
}

// Presigning is a local signing operation, no server is contacted.
func TestS3Storage_PresignedUploadURL(t *testing.T) {
	s := newTestS3(t)

	raw, err := s.GeneratePresignedUploadURL(context.Background(), "workout_images/1/a.png", "image/png", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/plans/workout_images/1/a.png", u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")
}

func TestS3Storage_PresignedDownloadURL_DefaultExpiry(t *testing.T) {
	s := newTestS3(t)

	raw, err := s.GeneratePresignedDownloadURL(context.Background(), "workout_images/1/a.png", 0)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestPlanImageKey(t *testing.T) {
	key, err := PlanImageKey(42, "image/JPEG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "workout_images/42/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	other, err := PlanImageKey(42, "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = PlanImageKey(42, "application/pdf")
	assert.Error(t, err)
	assert.False(t, IsSupportedImageType("text/html"))
}

func TestDisabledStorage(t *testing.T) {
	s := NewDisabledStorage()
	_, err := s.GeneratePresignedUploadURL(context.Background(), "k", "image/png", time.Minute)
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, s.DeleteObject(context.Background(), "k"), ErrStorageDisabled)
}
