package service

import (
	"context"
	"edu_resources_backend/internal/config"
	"edu_resources_backend/internal/util"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider abstracts where uploaded resource files land.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
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
	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filename))
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	base := strings.TrimRight(p.Config.PublicBaseURL, "/")
	return base + "/uploads/" + filename
}

type MinioStorageProvider struct {
	Client *minio.Client
	Config *config.StorageConfig
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	scheme := "http"
	if p.Config.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.Config.MinioEndpoint, p.Config.MinioBucket, filename)
}

type StorageService struct {
	Provider StorageProvider
	Cfg      *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case "minio":
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return &StorageService{
			Provider: &MinioStorageProvider{Client: client, Config: &cfg.Storage},
			Cfg:      cfg,
		}, nil
	default:
		return &StorageService{
			Provider: &LocalStorageProvider{Config: &cfg.Storage},
			Cfg:      cfg,
		}, nil
	}
}

var allowedUploadExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true,
	".mp3": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true,
}

type UploadResult struct {
	URL             string `json:"url"`
	DurationMinutes int    `json:"durationMinutes"`
}

// UploadResourceFile stores the file and, for videos, probes its duration so
// the admin UI can prefill duration_minutes.
func (s *StorageService) UploadResourceFile(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return nil, util.ErrUnsupportedUpload
	}

	filename := "resources/" + time.Now().Format("20060102150405") + "_" + uuid.New().String()[:8] + ext

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result := &UploadResult{}

	if videoExts[ext] {
		// Probe needs a file on disk; stage the upload through a temp copy.
		tmp, err := os.CreateTemp("", "edu-res-upload-*"+ext)
		if err != nil {
			return nil, err
		}
		tmpPath := tmp.Name()
		defer os.Remove(tmpPath)

		if _, err := io.Copy(tmp, src); err != nil {
			tmp.Close()
			return nil, err
		}
		tmp.Close()

		if seconds, err := util.ProbeDurationSeconds(tmpPath); err == nil && seconds > 0 {
			result.DurationMinutes = int(math.Round(seconds / 60))
			if result.DurationMinutes < 1 {
				result.DurationMinutes = 1
			}
		}

		staged, err := os.Open(tmpPath)
		if err != nil {
			return nil, err
		}
		defer staged.Close()

		url, err := s.Provider.Upload(ctx, filename, staged, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		result.URL = url
		return result, nil
	}

	url, err := s.Provider.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	result.URL = url
	return result, nil
}
