// Package archive persists point reports and chat transcripts to
// S3-compatible object storage. It is an audit/export sink, not the
// system's primary read path.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"hazardwatch/internal/config"
)

// ErrObjectNotFound indicates no blob exists under the requested key
var ErrObjectNotFound = errors.New("object not found")

// Store is the interface handlers depend on; tests inject fakes
type Store interface {
	SaveJSON(ctx context.Context, key string, v any) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Client is the minio-backed Store implementation
type Client struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

func NewClient(cfg config.ArchiveConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("missing one or more required archive settings: endpoint, access key, secret key")
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		client: minioClient,
		bucket: cfg.Bucket,
		logger: logger.With("component", "archive-client"),
	}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// SaveJSON marshals v and writes it under the given key
func (c *Client) SaveJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal object: %w", err)
	}

	_, err = c.client.PutObject(
		ctx,
		c.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store object: %w", err)
	}

	c.logger.Debug("archived object", "bucket", c.bucket, "key", key, "bytes", len(data))
	return nil
}

// Download reads the blob under the given key. Returns ErrObjectNotFound
// when no such key exists.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// Delete removes the blob under the given key. Returns ErrObjectNotFound
// when no such key exists.
func (c *Client) Delete(ctx context.Context, key string) error {
	// RemoveObject succeeds silently on missing keys, so check first
	_, err := c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to check for existing object: %w", err)
	}

	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	c.logger.Debug("deleted archived object", "bucket", c.bucket, "key", key)
	return nil
}
