package service

import (
	"context"
	"io"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/logger"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider abstracts object storage over named buckets.
type StorageProvider interface {
	Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error)
	UploadFile(ctx context.Context, bucket, filename string, localPath string, contentType string) (string, error)
	Delete(ctx context.Context, bucket, filename string) error
	GetURL(bucket, filename string) string
}

// LocalStorageProvider keeps objects under LocalPath/<bucket>/.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, bucket, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}

	return p.GetURL(bucket, filename), nil
}

func (p *LocalStorageProvider) UploadFile(ctx context.Context, bucket, filename string, localPath string, contentType string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer src.Close()
	return p.Upload(ctx, bucket, filename, src, 0, contentType)
}

func (p *LocalStorageProvider) Delete(ctx context.Context, bucket, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, bucket, filename))
}

func (p *LocalStorageProvider) GetURL(bucket, filename string) string {
	return "/uploads/" + bucket + "/" + filename
}

// MinioStorageProvider stores objects in MinIO, one bucket per content
// family.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, bucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(bucket, filename), nil
}

func (p *MinioStorageProvider) UploadFile(ctx context.Context, bucket, filename string, localPath string, contentType string) (string, error) {
	_, err := p.Client.FPutObject(ctx, bucket, filename, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(bucket, filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, bucket, filename string) error {
	return p.Client.RemoveObject(ctx, bucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(bucket, filename string) string {
	base := strings.TrimSuffix(p.Config.PublicBaseURL, "/")
	return base + "/" + bucket + "/" + filename
}

type StorageService struct {
	Provider StorageProvider
	Cfg      *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	s := &StorageService{Cfg: cfg}

	switch cfg.Storage.Type {
	case util.StorageMinio:
		provider, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("Failed to initialize MinIO provider, falling back to local storage", zap.Error(err))
			s.Provider = &LocalStorageProvider{Config: &cfg.Storage}
		} else {
			s.Provider = provider
		}
	default:
		s.Provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return s
}

func (s *StorageService) Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Upload(ctx, bucket, filename, reader, size, contentType)
}

func (s *StorageService) UploadFile(ctx context.Context, bucket, filename string, localPath string, contentType string) (string, error) {
	return s.Provider.UploadFile(ctx, bucket, filename, localPath, contentType)
}

func (s *StorageService) Delete(ctx context.Context, bucket, filename string) error {
	return s.Provider.Delete(ctx, bucket, filename)
}

func (s *StorageService) GetURL(bucket, filename string) string {
	return s.Provider.GetURL(bucket, filename)
}

// NormalizeImageURL rewrites a possibly-relative image reference into a
// usable URL. Empty values and failed resolutions fall back to the
// placeholder path; the function never fails.
func (s *StorageService) NormalizeImageURL(raw, bucket string) string {
	if raw == "" {
		logger.Log.Warn("empty image reference, using placeholder", zap.String("bucket", bucket))
		return util.DefaultImagePath
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return raw
	}

	url := s.Provider.GetURL(bucket, raw)
	if url == "" {
		return util.DefaultImagePath
	}
	return url
}

// DeleteByURL best-effort removes a stored object given its public
// URL. Foreign and rooted non-storage URLs are ignored.
func (s *StorageService) DeleteByURL(ctx context.Context, url string) {
	bucket, filename, ok := s.splitURL(url)
	if !ok {
		return
	}
	if err := s.Provider.Delete(ctx, bucket, filename); err != nil {
		logger.Log.Warn("failed to delete storage object",
			zap.String("bucket", bucket), zap.String("file", filename), zap.Error(err))
	}
}

func (s *StorageService) splitURL(url string) (bucket, filename string, ok bool) {
	for _, b := range util.KnownBuckets {
		marker := "/" + b + "/"
		if idx := strings.Index(url, marker); idx >= 0 {
			name := url[idx+len(marker):]
			if name != "" {
				return b, name, true
			}
		}
	}
	return "", "", false
}
