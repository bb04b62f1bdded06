// Package s3 implements the geometry object store on S3-compatible
// storage (AWS S3 or MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// Config captures the settings for the geometry bucket.
type Config struct {
	Region        string
	Endpoint      string // optional: MinIO or other S3-compatible endpoint
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string // base for public object URLs, e.g. https://cdn.example.com/geometries
}

// GeometryStore writes geometry blobs with create-only semantics.
type GeometryStore struct {
	client *s3.Client
	cfg    Config
}

// New builds a GeometryStore from static credentials.
func New(ctx context.Context, cfg Config) (*GeometryStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &GeometryStore{client: client, cfg: cfg}, nil
}

// Put stores data under key and returns its public URL. The conditional
// write (If-None-Match: *) guarantees an existing object is never
// overwritten; a collision surfaces as domain.ErrStorageConflict.
func (g *GeometryStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return "", fmt.Errorf("%w: %s", domain.ErrStorageConflict, key)
		}
		return "", fmt.Errorf("s3 put: %w", err)
	}

	return g.publicURL(key), nil
}

func (g *GeometryStore) publicURL(key string) string {
	return strings.TrimSuffix(g.cfg.PublicBaseURL, "/") + "/" + key
}
