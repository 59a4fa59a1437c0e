// Package lake uploads produced artifacts to an S3-compatible object store.
package lake

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore abstracts the minimal object-store operations the upload
// flow needs.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	PutFile(ctx context.Context, bucket, key, fromPath string) error
	StatObject(ctx context.Context, bucket, key string) (bool, error)
	ListPrefix(ctx context.Context, bucket, prefix string) ([]string, error)
}

// S3Client implements ObjectStore using the minio-go SDK.
type S3Client struct {
	client *minio.Client
	cfg    *Config
}

// NewS3Client creates an object-store client from config.
func NewS3Client(cfg *Config) (*S3Client, error) {
	if cfg == nil {
		return nil, wrapError(CodeEndpointUnreachable, false, fmt.Errorf("config is required"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.EndpointURL)
	if err != nil {
		return nil, wrapError(CodeEndpointUnreachable, false, fmt.Errorf("invalid endpoint URL: %w", err))
	}
	endpoint := u.Host
	if endpoint == "" {
		endpoint = cfg.EndpointURL
	}

	useSSL := cfg.UseSSL
	if u.Scheme == "https" {
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, wrapError(CodeEndpointUnreachable, true, fmt.Errorf("create client: %w", err))
	}

	return &S3Client{client: client, cfg: cfg}, nil
}

func (s *S3Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, wrapError(CodeEndpointUnreachable, true, err)
	}
	return exists, nil
}

func (s *S3Client) PutFile(ctx context.Context, bucket, key, fromPath string) error {
	_, err := s.client.FPutObject(ctx, bucket, key, fromPath, minio.PutObjectOptions{})
	if err != nil {
		return wrapError(CodeUploadFailed, true, err)
	}
	return nil
}

func (s *S3Client) StatObject(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, wrapError(CodeObjectNotFound, true, err)
	}
	return true, nil
}

func (s *S3Client) ListPrefix(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, wrapError(CodeEndpointUnreachable, true, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Uploader copies local artifacts into the configured bucket.
type Uploader struct {
	store  ObjectStore
	bucket string
}

// NewUploader wires an uploader over the given store and bucket.
func NewUploader(store ObjectStore, bucket string) *Uploader {
	return &Uploader{store: store, bucket: bucket}
}

// Upload copies one local file to the destination key. Without overwrite,
// an existing object under the same key is an error.
func (u *Uploader) Upload(ctx context.Context, fromPath, toKey string, overwrite bool) error {
	if _, err := os.Stat(fromPath); err != nil {
		return fmt.Errorf("source file: %w", err)
	}

	exists, err := u.store.BucketExists(ctx, u.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return wrapError(CodeBucketNotFound, false, fmt.Errorf("bucket %s not found", u.bucket))
	}

	if !overwrite {
		present, err := u.store.StatObject(ctx, u.bucket, toKey)
		if err != nil {
			return err
		}
		if present {
			return wrapError(CodeUploadFailed, false, fmt.Errorf("object %s already exists and overwrite is disabled", toKey))
		}
	}

	return u.store.PutFile(ctx, u.bucket, toKey, fromPath)
}

// LocalStore persists objects on disk to mimic the object store in tests.
type LocalStore struct {
	root string
}

// NewLocalStore creates a local object store rooted at dir.
func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root = filepath.Join(os.TempDir(), "lake-store")
	}
	_ = os.MkdirAll(root, 0o755)
	return &LocalStore{root: root}
}

// EnsureBucket creates the bucket directory.
func (s *LocalStore) EnsureBucket(ctx context.Context, bucket string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bucket == "" {
		return wrapError(CodeBucketNotFound, false, os.ErrNotExist)
	}
	return os.MkdirAll(filepath.Join(s.root, bucket), 0o755)
}

func (s *LocalStore) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(filepath.Join(s.root, bucket))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (s *LocalStore) PutFile(ctx context.Context, bucket, key, fromPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(fromPath)
	if err != nil {
		return wrapError(CodeUploadFailed, false, err)
	}
	fullPath := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return wrapError(CodeUploadFailed, false, err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return wrapError(CodeUploadFailed, true, err)
	}
	return nil
}

func (s *LocalStore) StatObject(ctx context.Context, bucket, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(s.root, bucket, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStore) ListPrefix(ctx context.Context, bucket, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bucketPath := filepath.Join(s.root, bucket)
	root := filepath.Join(bucketPath, filepath.FromSlash(prefix))

	var keys []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(bucketPath, path)
		if relErr != nil {
			return relErr
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
