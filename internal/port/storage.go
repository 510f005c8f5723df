package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// DownloadOutput is a fetched object with its reported content type.
type DownloadOutput struct {
	Bytes       []byte
	ContentType string
}

// ObjectStorage abstracts cloud object storage operations.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	Download(ctx context.Context, bucket, key string) (*DownloadOutput, error)
}
