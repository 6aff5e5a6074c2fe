package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 is a Store backed by an S3 bucket. Each key becomes an object at
// prefix+key.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := storage.NewS3(s3.NewFromConfig(cfg), "my-bucket", "cells/")
type S3 struct {
	client  *s3.Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3 creates an S3 store over the given client, bucket, and key
// prefix. Operations use a 10 second timeout by default; see WithTimeout.
func NewS3(client *s3.Client, bucket, prefix string) *S3 {
	return &S3{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		timeout: 10 * time.Second,
	}
}

// WithTimeout sets the per-operation timeout and returns the store.
func (s *S3) WithTimeout(d time.Duration) *S3 {
	s.timeout = d
	return s
}

// Read returns the stored bytes for key. A missing object is reported
// as absent, not as an error.
func (s *S3) Read(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: s3 read %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("storage: s3 read %q: %w", key, err)
	}
	return data, true, nil
}

// Write stores data under key.
func (s *S3) Write(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("storage: s3 write %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *S3) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		return fmt.Errorf("storage: s3 delete %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys under the store's prefix.
func (s *S3) Keys() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("storage: s3 list keys: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			keys = append(keys, key[len(s.prefix):])
		}
	}
	return keys, nil
}

var _ Store = (*S3)(nil)
