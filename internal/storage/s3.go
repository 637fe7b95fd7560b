package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client the photo store uses.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PhotoStore uploads listing photo renditions and derives their public URLs.
type PhotoStore struct {
	client S3API
	bucket string
	region string
}

// NewPhotoStore creates a photo store over the given bucket.
func NewPhotoStore(client S3API, bucket, region string) *PhotoStore {
	return &PhotoStore{client: client, bucket: bucket, region: region}
}

// NewS3Client builds the underlying S3 client, honoring path-style addressing
// for MinIO/LocalStack endpoints.
func NewS3Client(awsCfg aws.Config, usePathStyle bool) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})
}

// Put uploads one object. The key carries the listing id prefix, e.g.
// "{id}/standard.png".
func (s *PhotoStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// URL returns the stable public URL for a stored object.
func (s *PhotoStore) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
