// Package storage archives rendered documents in S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 API the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver uploads documents to a bucket under a fixed key prefix.
type S3Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

// Ensure S3Archiver implements the DocumentArchiver port
var _ portssvc.DocumentArchiver = (*S3Archiver)(nil)

// S3ArchiverConfig contains configuration for the archive bucket
type S3ArchiverConfig struct {
	Bucket string
	Prefix string // e.g. "invoices/"
	Region string
}

// NewS3Archiver loads the default AWS credential chain and builds an S3 client.
func NewS3Archiver(ctx context.Context, cfg S3ArchiverConfig) (*S3Archiver, error) {
	opts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ArchiverWithClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

// NewS3ArchiverWithClient builds an archiver around an existing client.
func NewS3ArchiverWithClient(client ObjectPutter, bucket, prefix string) *S3Archiver {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// ObjectKey returns the full object key for a key relative to the prefix.
func (a *S3Archiver) ObjectKey(key string) string {
	return a.prefix + strings.TrimPrefix(key, "/")
}

// Archive uploads doc under the prefixed key.
func (a *S3Archiver) Archive(ctx context.Context, key string, doc domain.Document) error {
	objectKey := a.ObjectKey(key)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(a.bucket),
		Key:                aws.String(objectKey),
		Body:               bytes.NewReader(doc.Content),
		ContentType:        aws.String(doc.ContentType),
		ContentDisposition: aws.String("attachment; filename=" + doc.Filename),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", objectKey, err)
	}
	return nil
}
