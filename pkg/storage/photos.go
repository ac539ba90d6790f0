// Package storage turns stored profile photo references into URLs a browser
// can load. Absolute http(s) references pass through unchanged; anything else
// is treated as an object key in the photo bucket and presigned.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-interview-report-backend/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Config holds configuration for S3-compatible storage.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // non-AWS providers; enables path-style addressing
	URLTTL          time.Duration
}

// PhotoResolver resolves photo references. The zero value only passes
// absolute URLs through.
type PhotoResolver struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewS3PhotoResolver builds a resolver that presigns object keys.
// Static credentials are used when given, otherwise the default AWS chain.
func NewS3PhotoResolver(ctx context.Context, cfg S3Config) (*PhotoResolver, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &PhotoResolver{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

// Resolve returns a loadable URL for ref, or "" when none can be produced.
func (r *PhotoResolver) Resolve(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if r == nil || r.presign == nil {
		return ""
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		logger.Log.Warn("failed to presign profile photo",
			zap.String("key", ref),
			zap.Error(err),
		)
		return ""
	}
	return req.URL
}
