package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"paxscan/internal/config"
	"paxscan/internal/domain"
	"paxscan/internal/pipeline"
	"paxscan/internal/port"
)

// ExtractionService defines the boarding-pass extraction contract.
type ExtractionService interface {
	ExtractImage(ctx context.Context, image domain.ImageInput) (*domain.BoardingPassRecord, error)
	ExtractFromStorage(ctx context.Context, bucket, key string) (*domain.BoardingPassRecord, error)
}

type extractionService struct {
	orchestrator *pipeline.Orchestrator
	storage      port.ObjectStorage
	cfg          *config.S3Config
}

// NewExtractionService creates a new ExtractionService implementation.
// storage may be nil when no object store is configured; ExtractFromStorage
// then fails cleanly.
func NewExtractionService(
	orchestrator *pipeline.Orchestrator,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ExtractionService {
	return &extractionService{
		orchestrator: orchestrator,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *extractionService) ExtractImage(ctx context.Context, image domain.ImageInput) (*domain.BoardingPassRecord, error) {
	if len(image.Bytes) == 0 {
		return nil, domain.ErrEmptyImage
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && int64(len(image.Bytes)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Trust the bytes over the declared header.
	sniffLen := len(image.Bytes)
	if sniffLen > 512 {
		sniffLen = 512
	}
	detected := http.DetectContentType(image.Bytes[:sniffLen])
	if _, ok := domain.AllowedContentTypes[detected]; !ok {
		return nil, domain.ErrUnsupportedContentType
	}
	image.ContentType = detected

	rec, err := s.orchestrator.Extract(ctx, image)
	if err != nil {
		return nil, err
	}

	if s.cfg.ArchiveOnWin && s.storage != nil {
		s.archive(image)
	}
	return rec, nil
}

func (s *extractionService) ExtractFromStorage(ctx context.Context, bucket, key string) (*domain.BoardingPassRecord, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	if bucket == "" {
		bucket = s.cfg.Bucket
	}

	obj, err := s.storage.Download(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", bucket, key, err)
	}

	return s.ExtractImage(ctx, domain.ImageInput{
		Bytes:       obj.Bytes,
		ContentType: obj.ContentType,
	})
}

// archive copies a successfully extracted image into the configured bucket.
// Failures are logged and swallowed; archival never fails a request.
func (s *extractionService) archive(image domain.ImageInput) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("extracted/%s/%s", time.Now().Format("2006/01/02"), uuid.New())
	if err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(image.Bytes),
		ContentType: image.ContentType,
	}); err != nil {
		log.Printf("extractionService.archive: upload %s: %v", key, err)
	}
}
