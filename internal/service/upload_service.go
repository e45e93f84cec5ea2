package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sahyadritrails/trails-api/internal/media"
	"github.com/sahyadritrails/trails-api/internal/repository/ports"
)

var (
	ErrUploadMissing         = errors.New("no file provided")
	ErrUploadTooLarge        = errors.New("file exceeds size limit")
	ErrUploadUnsupportedType = errors.New("unsupported file type")
	ErrUploadFailed          = errors.New("upload failed")
)

const defaultUploadMaxBytes = int64(10 * 1024 * 1024)

var defaultUploadMIMEs = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

type UploadServiceConfig struct {
	Bucket            string
	MaxBytes          int64
	AllowedMIMETypes  []string
	ImageProcessor    media.Processor
	ImageMaxDimension int
}

type FileUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// UploadService is the relay between multipart form uploads and object
// storage. Every call creates a new object under a collision-resistant key;
// nothing is ever deleted, so dereferenced images leak by design.
type UploadService struct {
	storage ports.ObjectStorage

	bucket            string
	maxBytes          int64
	allowedMIMEs      map[string]struct{}
	imageProcessor    media.Processor
	imageMaxDimension int
	now               func() time.Time
}

func NewUploadService(storage ports.ObjectStorage, cfg UploadServiceConfig) *UploadService {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultUploadMaxBytes
	}
	allowed := cfg.AllowedMIMETypes
	if len(allowed) == 0 {
		allowed = defaultUploadMIMEs
	}
	mimeSet := make(map[string]struct{}, len(allowed))
	for _, mt := range allowed {
		mimeSet[strings.ToLower(strings.TrimSpace(mt))] = struct{}{}
	}
	maxDimension := cfg.ImageMaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}

	return &UploadService{
		storage:           storage,
		bucket:            strings.TrimSpace(cfg.Bucket),
		maxBytes:          maxBytes,
		allowedMIMEs:      mimeSet,
		imageProcessor:    cfg.ImageProcessor,
		imageMaxDimension: maxDimension,
		now:               time.Now,
	}
}

// Upload stores the file and returns its public URL. The object key follows
// images/<unix-millis>-<random>.<ext> so concurrent uploads never collide.
func (s *UploadService) Upload(ctx context.Context, upload FileUpload) (string, error) {
	if upload.Reader == nil || upload.Size <= 0 {
		return "", ErrUploadMissing
	}
	if upload.Size > s.maxBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrUploadTooLarge, s.maxBytes)
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if _, ok := s.allowedMIMEs[contentType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUploadUnsupportedType, upload.ContentType)
	}

	reader, size, contentType, err := s.prepare(ctx, upload, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	objectKey := fmt.Sprintf("images/%d-%s%s", s.now().UnixMilli(), randomSuffix(), fileExtension(contentType, upload.FileName))

	url, err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, reader, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

func (s *UploadService) prepare(ctx context.Context, upload FileUpload, contentType string) (io.Reader, int64, string, error) {
	if s.imageProcessor == nil {
		return upload.Reader, upload.Size, contentType, nil
	}
	result, err := s.imageProcessor.Process(ctx, media.Upload{
		Reader:      upload.Reader,
		Size:        upload.Size,
		FileName:    upload.FileName,
		ContentType: contentType,
	}, s.imageMaxDimension)
	if err != nil {
		return nil, 0, "", err
	}
	return bytes.NewReader(result.Bytes), int64(len(result.Bytes)), result.ContentType, nil
}

func randomSuffix() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "000000"
	}
	return hex.EncodeToString(buf)
}

func fileExtension(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	if ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName))); ext != "" {
		return ext
	}
	return ".bin"
}
