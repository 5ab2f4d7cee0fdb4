package service

import (
	"context"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStorage(t *testing.T) *StorageService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()
	return NewStorageService(cfg)
}

func TestNormalizeImageURL(t *testing.T) {
	s := newLocalStorage(t)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty falls back to placeholder", "", util.DefaultImagePath},
		{"absolute http passes through", "http://cdn.example/img.jpg", "http://cdn.example/img.jpg"},
		{"absolute https passes through", "https://cdn.example/img.jpg", "https://cdn.example/img.jpg"},
		{"rooted path passes through", "/images/custom.jpg", "/images/custom.jpg"},
		{"bare filename resolves against the bucket", "photo.jpg", "/uploads/" + util.BucketHeroImages + "/photo.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.NormalizeImageURL(tc.raw, util.BucketHeroImages))
		})
	}
}

func TestLocalStorageUploadAndDelete(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, util.BucketEvents, "open-day.jpg", strings.NewReader("jpeg bytes"), 0, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+util.BucketEvents+"/open-day.jpg", url)

	stored := filepath.Join(s.Cfg.Storage.LocalPath, util.BucketEvents, "open-day.jpg")
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	s.DeleteByURL(ctx, url)
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteByURLIgnoresForeignURLs(t *testing.T) {
	s := newLocalStorage(t)
	ctx := context.Background()

	// Nothing to assert beyond "does not panic and does not error out":
	// URLs without a known bucket segment are silently skipped.
	s.DeleteByURL(ctx, "https://other.example/some/path.jpg")
	s.DeleteByURL(ctx, "/images/placeholder.jpg")
	s.DeleteByURL(ctx, "")
}

func TestSplitURL(t *testing.T) {
	s := newLocalStorage(t)

	bucket, filename, ok := s.splitURL("http://media.example/" + util.BucketFacilities + "/tour.mp4")
	require.True(t, ok)
	assert.Equal(t, util.BucketFacilities, bucket)
	assert.Equal(t, "tour.mp4", filename)

	_, _, ok = s.splitURL("/uploads/unknown-bucket/file.jpg")
	assert.False(t, ok)

	_, _, ok = s.splitURL("/uploads/" + util.BucketEvents + "/")
	assert.False(t, ok)
}
