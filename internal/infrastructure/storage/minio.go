package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-scorecard/pkg/config"
)

const exportPrefix = "exports/"

// MinIOClient wraps MinIO operations used to publish analysis exports
type MinIOClient struct {
	client     *minio.Client
	bucket     string
	publicURL  string // Public URL for generating accessible URLs (e.g., https://minio.example.com)
	linkExpiry time.Duration
}

// NewMinIOClient creates a new MinIO client
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:     minioClient,
		bucket:     cfg.BucketName,
		publicURL:  strings.TrimRight(cfg.PublicURL, "/"),
		linkExpiry: cfg.LinkExpiry,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it does not exist yet
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// UploadFile uploads a file to MinIO
func (m *MinIOClient) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// PublishExport uploads an export document and returns a presigned download URL
func (m *MinIOClient) PublishExport(ctx context.Context, id, fileName string, document []byte) (string, error) {
	objectName := ExportObjectName(id, fileName)
	if err := m.UploadFile(ctx, objectName, bytes.NewReader(document), int64(len(document)), "application/json"); err != nil {
		return "", err
	}
	return m.GetFileURL(ctx, objectName, m.linkExpiry)
}

// GetFileURL gets a presigned URL that downloads the object under its base name
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", `attachment; filename="`+path.Base(objectName)+`"`)

	presigned, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return rewritePublicURL(presigned, m.publicURL), nil
}

// ListExports lists published export objects
func (m *MinIOClient) ListExports(ctx context.Context) ([]string, error) {
	var files []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    exportPrefix,
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, object.Key)
	}

	return files, nil
}

// GetBucketInfo returns information about the bucket and connection
func (m *MinIOClient) GetBucketInfo(ctx context.Context) (map[string]interface{}, error) {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	info := map[string]interface{}{
		"bucket":        m.bucket,
		"bucket_exists": exists,
		"endpoint":      m.client.EndpointURL().String(),
	}

	if exists {
		files, err := m.ListExports(ctx)
		if err != nil {
			info["error"] = err.Error()
		} else {
			info["total_exports"] = len(files)
		}
	}

	return info, nil
}

// ExportObjectName returns the object key for a batch export
func ExportObjectName(id, fileName string) string {
	return exportPrefix + id + "/" + fileName
}

// rewritePublicURL swaps the internal endpoint of a presigned URL for the
// configured public one, keeping path and signed query intact.
func rewritePublicURL(presigned *url.URL, publicURL string) string {
	if publicURL == "" {
		return presigned.String()
	}
	return publicURL + presigned.RequestURI()
}
