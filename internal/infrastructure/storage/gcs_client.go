package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		fmt.Printf("Warning: Failed to set CORS configuration: %v\n", err)
	}

	return storageClient, nil
}

func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	corsConfig := storage.CORS{
		MaxAge:          3600, // 1 hour
		Methods:         []string{"GET", "POST", "OPTIONS"},
		Origins:         []string{"*"}, // Replace with your domains in production
		ResponseHeaders: []string{"Content-Type", "Range"},
	}

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}

	if len(bucketAttrs.CORS) == 0 {
		bucketUpdate := storage.BucketAttrsToUpdate{
			CORS: []storage.CORS{corsConfig},
		}

		_, err := bucket.Update(ctx, bucketUpdate)
		if err != nil {
			return fmt.Errorf("failed to update bucket CORS: %v", err)
		}
	}

	return nil
}

// UploadMedia streams the payload into the bucket under objectName. The copy is
// incremental, so memory use does not grow with the file size.
func (c *CloudStorageClient) UploadMedia(ctx context.Context, file io.Reader, contentType, objectName string) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) StatMedia(ctx context.Context, objectName string) (string, int64, error) {
	attrs, err := c.client.Bucket(c.bucketName).Object(objectName).Attrs(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get object attributes: %v", err)
	}

	return attrs.ContentType, attrs.Size, nil
}

func (c *CloudStorageClient) GetMedia(ctx context.Context, objectName string) (io.ReadCloser, error) {
	reader, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object reader: %v", err)
	}

	return reader, nil
}

func (c *CloudStorageClient) GetMediaRange(ctx context.Context, objectName string, offset, length int64) (io.ReadCloser, error) {
	reader, err := c.client.Bucket(c.bucketName).Object(objectName).NewRangeReader(ctx, offset, length)
	if err != nil {
		return nil, fmt.Errorf("failed to open range reader: %v", err)
	}

	return reader, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
