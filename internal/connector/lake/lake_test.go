package lake

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFromMap_Validation(t *testing.T) {
	cases := []struct {
		name  string
		creds map[string]any
		code  string
	}{
		{"missing endpoint", map[string]any{"access_key_id": "k", "secret_access_key": "s", "bucket": "b"}, CodeEndpointUnreachable},
		{"missing keys", map[string]any{"endpoint_url": "http://localhost:9000", "bucket": "b"}, CodeAuthInvalid},
		{"missing bucket", map[string]any{"endpoint_url": "http://localhost:9000", "access_key_id": "k", "secret_access_key": "s"}, CodeBucketNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConfigFromMap(tc.creds)
			var lerr *Error
			if !errors.As(err, &lerr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if lerr.Code != tc.code {
				t.Errorf("got code %s, want %s", lerr.Code, tc.code)
			}
		})
	}
}

func TestUploader_Upload(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	if err := store.EnsureBucket(ctx, "raw"); err != nil {
		t.Fatal(err)
	}
	up := NewUploader(store, "raw")

	src := writeSource(t, "id\n1\n")
	if err := up.Upload(ctx, src, "mindful/2023/artifact.csv", false); err != nil {
		t.Fatal(err)
	}

	present, err := store.StatObject(ctx, "raw", "mindful/2023/artifact.csv")
	if err != nil {
		t.Fatal(err)
	}
	if !present {
		t.Error("uploaded object not found")
	}
}

func TestUploader_NoOverwriteConflict(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	if err := store.EnsureBucket(ctx, "raw"); err != nil {
		t.Fatal(err)
	}
	up := NewUploader(store, "raw")
	src := writeSource(t, "one")

	if err := up.Upload(ctx, src, "artifact.csv", false); err != nil {
		t.Fatal(err)
	}

	err := up.Upload(ctx, src, "artifact.csv", false)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Code != CodeUploadFailed {
		t.Fatalf("expected upload conflict, got %v", err)
	}

	if err := up.Upload(ctx, src, "artifact.csv", true); err != nil {
		t.Errorf("overwrite should succeed: %v", err)
	}
}

func TestUploader_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	up := NewUploader(store, "absent")
	src := writeSource(t, "x")

	err := up.Upload(ctx, src, "artifact.csv", false)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Code != CodeBucketNotFound {
		t.Fatalf("expected bucket-not-found, got %v", err)
	}
}

func TestUploader_SourceMissing(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	if err := store.EnsureBucket(ctx, "raw"); err != nil {
		t.Fatal(err)
	}
	up := NewUploader(store, "raw")

	if err := up.Upload(ctx, filepath.Join(t.TempDir(), "missing.csv"), "artifact.csv", false); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestLocalStore_ListPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	if err := store.EnsureBucket(ctx, "raw"); err != nil {
		t.Fatal(err)
	}
	src := writeSource(t, "x")

	for _, key := range []string{"a/one.csv", "a/two.csv", "b/three.csv"} {
		if err := store.PutFile(ctx, "raw", key, src); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := store.ListPrefix(ctx, "raw", "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a/one.csv" || keys[1] != "a/two.csv" {
		t.Errorf("got %v, want [a/one.csv a/two.csv]", keys)
	}
}
