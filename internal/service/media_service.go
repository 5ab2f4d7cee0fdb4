package service

import (
	"context"
	"fmt"
	"io"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/logger"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaService handles admin uploads: images into the named buckets
// and facility tour videos, for which a thumbnail frame is extracted.
type MediaService struct {
	Storage *StorageService
	Cfg     *config.Config
}

func NewMediaService(storage *StorageService, cfg *config.Config) *MediaService {
	return &MediaService{Storage: storage, Cfg: cfg}
}

func knownBucket(bucket string) bool {
	for _, b := range util.KnownBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}

func generatedFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8] + ext
}

// UploadImage validates the content is really an image and stores it
// under the requested bucket.
func (s *MediaService) UploadImage(ctx context.Context, bucket string, file *multipart.FileHeader) (string, error) {
	if !knownBucket(bucket) {
		return "", util.ErrUnknownBucket
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedImageExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", util.ErrInvalidImageExt
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeImage, "image/svg+xml", "text/xml", "text/plain"}); err != nil {
		return "", fmt.Errorf("invalid image content: %w", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	return s.Storage.Upload(ctx, bucket, generatedFilename(file.Filename), src, file.Size, file.Header.Get("Content-Type"))
}

// UploadFacilityVideo stores a campus tour clip in the facilities
// bucket and extracts a thumbnail frame three seconds in. A failed
// thumbnail does not fail the upload.
func (s *MediaService) UploadFacilityVideo(ctx context.Context, file *multipart.FileHeader) (videoURL, thumbnailURL string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			valid = true
			break
		}
	}
	if !valid {
		return "", "", util.ErrInvalidVideoExt
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	// Spool to a temp file: ffmpeg needs a path and the upload needs a
	// second read.
	tmp, err := os.CreateTemp("", "facility-video-*"+ext)
	if err != nil {
		return "", "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", "", err
	}
	tmp.Close()

	videoName := generatedFilename(file.Filename)
	videoURL, err = s.Storage.UploadFile(ctx, util.BucketFacilities, videoName, tmpPath, "video/"+strings.TrimPrefix(ext, "."))
	if err != nil {
		return "", "", err
	}

	if info, err := util.GetVideoInfo(tmpPath); err == nil {
		logger.Log.Info("facility video uploaded",
			zap.String("video", videoName),
			zap.Float64("duration", info.Duration),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height))
	}

	thumbPath := tmpPath + ".jpg"
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "3"); err != nil {
		logger.Log.Error("thumbnail extraction failed", zap.String("video", videoName), zap.Error(err))
		return videoURL, "", nil
	}
	defer os.Remove(thumbPath)

	thumbName := strings.TrimSuffix(videoName, ext) + "_thumb.jpg"
	thumbnailURL, err = s.Storage.UploadFile(ctx, util.BucketFacilities, thumbName, thumbPath, "image/jpeg")
	if err != nil {
		logger.Log.Error("thumbnail upload failed", zap.String("video", videoName), zap.Error(err))
		return videoURL, "", nil
	}

	return videoURL, thumbnailURL, nil
}
