package service

import (
	"context"
	"io"
)

// MediaStorageService is the port to the object store holding media binaries.
type MediaStorageService interface {
	// UploadMedia streams the payload to the store under objectName with the
	// given content type and public-read visibility, returning the public URL.
	UploadMedia(ctx context.Context, file io.Reader, contentType, objectName string) (string, error)

	// StatMedia reports the stored object's content type and size.
	StatMedia(ctx context.Context, objectName string) (string, int64, error)

	// GetMedia opens the whole object for reading.
	GetMedia(ctx context.Context, objectName string) (io.ReadCloser, error)

	// GetMediaRange opens a byte range of the object. length may be -1 to
	// read through the end of the object.
	GetMediaRange(ctx context.Context, objectName string, offset, length int64) (io.ReadCloser, error)

	Close() error
}
