package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/kiri-yossy/bezihuri/internal/config"
	"github.com/kiri-yossy/bezihuri/internal/storage"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

// UploadService stores item images and hands back their public URLs.
type UploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) *UploadService {
	return &UploadService{storage: store, cfg: cfg}
}

type UploadedImage struct {
	URL string `json:"url"`
}

func (s *UploadService) UploadImages(ctx context.Context, userID string, files []*multipart.FileHeader) ([]UploadedImage, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("No files provided")
	}
	if len(files) > s.cfg.Upload.MaxImages {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("At most %d images per upload", s.cfg.Upload.MaxImages))
	}

	uploaded := make([]UploadedImage, 0, len(files))
	for _, header := range files {
		image, err := s.uploadOne(ctx, userID, header)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, *image)
	}
	return uploaded, nil
}

func (s *UploadService) uploadOne(ctx context.Context, userID string, header *multipart.FileHeader) (*UploadedImage, error) {
	if header.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError("File exceeds the maximum allowed size")
	}

	contentType := header.Header.Get("Content-Type")
	if !s.allowedType(contentType) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Unsupported content type: %s", contentType))
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	path := buildObjectPath(userID, header.Filename)
	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &UploadedImage{URL: url}, nil
}

func (s *UploadService) allowedType(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}

// buildObjectPath keys files by owner and date with a random name, so
// uploads never collide and never expose the original filename.
func buildObjectPath(userID, filename string) string {
	raw := make([]byte, 16)
	_, _ = rand.Read(raw)
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("items/%s/%s/%s%s",
		userID, time.Now().Format("2006/01/02"), hex.EncodeToString(raw), ext)
}
