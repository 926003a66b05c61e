package providers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
)

// ObjectStorage is the five-operation contract the travel module needs.
// Nothing outside this file knows which S3-compatible provider sits behind it.
type ObjectStorage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	ObjectExists(ctx context.Context, key string) (bool, error)
	DeleteObject(ctx context.Context, key string) error
	DeleteObjectsByPrefix(ctx context.Context, prefix string) error
	PublicURL(key string) string
}

// S3Storage implements ObjectStorage against any S3-compatible endpoint
// (Cloudflare R2, MinIO, AWS).
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ ObjectStorage = (*S3Storage)(nil)

func NewS3Storage(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*S3Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build storage client: %w", err)
	}

	return &S3Storage{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}, nil
}

// GenerateUploadURL returns a presigned PUT URL for direct frontend uploads.
func (s *S3Storage) GenerateUploadURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	presigned, err := s.client.Presign(ctx, "PUT", s.bucket, key,
		expires, url.Values{"Content-Type": []string{contentType}})
	if err != nil {
		return "", apperrors.Storage("failed to generate upload URL", err)
	}
	return presigned.String(), nil
}

// ObjectExists checks that an object landed in the bucket.
func (s *S3Storage) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return false, nil
		}
		return false, apperrors.Storage("failed to check object", err)
	}
	return true, nil
}

// DeleteObject removes one object. Idempotent: deleting a missing key is fine.
func (s *S3Storage) DeleteObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return apperrors.Storage("failed to delete object", err)
	}
	return nil
}

// DeleteObjectsByPrefix removes every object under a prefix, used when a
// trip or album is deleted.
func (s *S3Storage) DeleteObjectsByPrefix(ctx context.Context, prefix string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	errCh := s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{})
	for removeErr := range errCh {
		if removeErr.Err != nil {
			return apperrors.Storage("failed to delete objects by prefix", removeErr.Err)
		}
	}
	return nil
}

// PublicURL builds the permanent public URL of an object.
func (s *S3Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, key)
}

// Storage key hierarchy: users/{uid}/trips/{tid}/albums/{aid}/{photo}.{ext}.
// Prefix deletes for a whole trip or album depend on this layout.

func PhotoKey(userID, tripID, albumID, photoID uint, extension string) string {
	return fmt.Sprintf("users/%d/trips/%d/albums/%d/%d.%s", userID, tripID, albumID, photoID, extension)
}

func TripPrefix(userID, tripID uint) string {
	return fmt.Sprintf("users/%d/trips/%d/", userID, tripID)
}

func AlbumPrefix(userID, tripID, albumID uint) string {
	return fmt.Sprintf("users/%d/trips/%d/albums/%d/", userID, tripID, albumID)
}
