package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"rewear/config"

	"cloud.google.com/go/storage"
	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

const uploadTimeout = 50 * time.Second

var ErrStorageDisabled = errors.New("image storage is not configured")

// StorageService uploads listing images to a public GCS bucket.
// When no bucket is configured the service stays disabled and
// uploads return ErrStorageDisabled.
type StorageService struct {
	client *storage.Client
	bucket string
	log    logger.Logger
}

func NewStorageService(config config.Config) (*StorageService, error) {
	log := logger.New("StorageService")

	if config.StorageBucket == "" {
		log.Info("No storage bucket configured, image uploads disabled")
		return &StorageService{log: log}, nil
	}

	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, log.Function("NewStorageService").
			Err("failed to create storage client", err)
	}

	return &StorageService{
		client: client,
		bucket: config.StorageBucket,
		log:    log,
	}, nil
}

func (s *StorageService) Enabled() bool {
	return s.client != nil
}

// UploadImage writes the file under the owner's prefix and returns the
// public object URL.
func (s *StorageService) UploadImage(
	ctx context.Context,
	ownerID uuid.UUID,
	filename string,
	file io.Reader,
) (string, error) {
	log := s.log.Function("UploadImage")

	if !s.Enabled() {
		return "", ErrStorageDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	objectPath := ownerID.String() + "/" +
		strconv.FormatInt(time.Now().UnixMilli(), 10) + ext

	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(wc, file); err != nil {
		return "", log.Err("failed to write object", err, "object", objectPath)
	}
	if err := wc.Close(); err != nil {
		return "", log.Err("failed to finalize object", err, "object", objectPath)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath), nil
}

func (s *StorageService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
