package task

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adrian-wojcik/viadot/internal/connector/lake"
	"github.com/adrian-wojcik/viadot/internal/credentials"
)

// LakeUploadOptions configure the lake_upload task.
type LakeUploadOptions struct {
	// FromPath is the local file to upload.
	FromPath string

	// ToPath is the destination object key inside the configured bucket.
	ToPath string

	// Overwrite replaces an existing object under the same key.
	Overwrite bool

	// Credential inputs, in order of preference.
	Credentials map[string]any
	ConfigKey   string
	SecretName  string
	Secrets     credentials.SecretStore

	// Store overrides the object store (tests use the local store).
	Store lake.ObjectStore

	Logger zerolog.Logger
	Retry  RetryPolicy
}

// LakeUpload copies a produced artifact into the object-store bucket.
func LakeUpload(ctx context.Context, opts LakeUploadOptions) error {
	logger := taskLogger(opts.Logger, "lake_upload")

	creds, err := credentials.Resolve(opts.Credentials, opts.ConfigKey, opts.SecretName, opts.Secrets)
	if err != nil {
		return err
	}
	cfg, err := lake.ConfigFromMap(creds)
	if err != nil {
		return err
	}

	store := opts.Store
	if store == nil {
		store, err = lake.NewS3Client(cfg)
		if err != nil {
			return err
		}
	}
	uploader := lake.NewUploader(store, cfg.Bucket)

	logger.Info().Str("from", opts.FromPath).Str("to", opts.ToPath).Msg("uploading artifact")
	_, err = run(ctx, opts.Retry, logger, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, uploader.Upload(ctx, opts.FromPath, opts.ToPath, opts.Overwrite)
	})
	return err
}
