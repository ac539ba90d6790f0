package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoResolver_PassThroughAndEmpty(t *testing.T) {
	var r *PhotoResolver
	ctx := context.Background()

	assert.Equal(t, "https://cdn.example.com/a.png", r.Resolve(ctx, "https://cdn.example.com/a.png"))
	assert.Equal(t, "", r.Resolve(ctx, "  "))
	assert.Equal(t, "", r.Resolve(ctx, "photos/u1.png"), "keys need a configured bucket")
}

func TestPhotoResolver_PresignsKeys(t *testing.T) {
	ctx := context.Background()
	r, err := NewS3PhotoResolver(ctx, S3Config{
		Region:          "us-east-1",
		Bucket:          "photos",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		Endpoint:        "http://localhost:9000",
		URLTTL:          5 * time.Minute,
	})
	require.NoError(t, err)

	url := r.Resolve(ctx, "/users/u1.png")
	assert.Contains(t, url, "http://localhost:9000/photos/users/u1.png")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=300")
}
