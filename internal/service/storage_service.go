package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rudasumbwa_backend/internal/config"
	"rudasumbwa_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// StorageProvider abstracts where uploaded files land. The service builds
// object names; providers only move bytes and return a serving URL.
type StorageProvider interface {
	Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Save(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	fullPath := filepath.Join(l.BasePath, objectName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/uploads/" + objectName, nil
}

type MinioStorage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioStorage{client: client, bucket: cfg.MinioBucket, useSSL: cfg.MinioUseSSL}, nil
}

func (m *MinioStorage) Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.client.EndpointURL().Host, m.bucket, objectName), nil
}

type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg config.StorageConfig) (*StorageService, error) {
	switch cfg.Type {
	case "minio":
		provider, err := NewMinioStorage(cfg)
		if err != nil {
			return nil, err
		}
		return &StorageService{Provider: provider}, nil
	case "local", "":
		return &StorageService{Provider: NewLocalStorage(cfg.LocalPath)}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

type UploadResult struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration,omitempty"`
}

// UploadFile stores a multipart upload under folder/uuid.ext.
func (s *StorageService) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectName := folder + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	url, err := s.Provider.Save(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url}, nil
}

// UploadMedia stores a video or audio upload and probes its duration. The
// probe runs against a temp copy so it works the same for every provider; a
// probe failure only costs the duration, not the upload.
func (s *StorageService) UploadMedia(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "media-*"+strings.ToLower(filepath.Ext(file.Filename)))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	objectName := folder + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	url, err := s.Provider.Save(ctx, objectName, tmp, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	duration, err := ProbeMediaDuration(tmp.Name())
	if err != nil {
		logger.Log.Warn("media duration probe failed",
			zap.String("object", objectName), zap.Error(err))
		duration = 0
	}
	return &UploadResult{URL: url, Duration: duration}, nil
}

// ProbeMediaDuration reads the container duration in seconds via ffprobe.
func ProbeMediaDuration(path string) (float64, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, err
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return 0, err
	}
	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("no duration in probe output")
	}
	return strconv.ParseFloat(probe.Format.Duration, 64)
}
