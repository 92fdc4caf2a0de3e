package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.register(t, "alice")
	files := newMemFiles()
	uploads := NewUploadService(env.store, files, 1<<20, zap.NewNop())

	up, err := uploads.Upload(ctx, u.ID, fileHeader(t, "image", "../../pixel.png", pngBytes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if up.MimeType != "image/png" || up.Size != int64(len(pngBytes)) {
		t.Errorf("upload = %+v", up)
	}
	if up.OriginalName != "pixel.png" {
		t.Errorf("original name = %q", up.OriginalName)
	}
	if !strings.HasPrefix(up.StorageKey, "1/") || !strings.HasSuffix(up.StorageKey, ".png") {
		t.Errorf("storage key = %q", up.StorageKey)
	}
	if up.ImageURL != "/files/"+up.StorageKey {
		t.Errorf("image url = %q", up.ImageURL)
	}
	if files.count() != 1 {
		t.Errorf("files stored = %d", files.count())
	}

	mine, _ := uploads.ListMine(ctx, u.ID)
	if len(mine) != 1 {
		t.Fatalf("list = %d", len(mine))
	}
	if _, err := uploads.Get(ctx, u.ID+1, up.ID); !errors.Is(err, ErrUploadNotFound) {
		t.Errorf("other user: expected ErrUploadNotFound, got %v", err)
	}
}

func TestUploadService_Rejections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.register(t, "bob")
	files := newMemFiles()
	uploads := NewUploadService(env.store, files, 32, zap.NewNop())

	if _, err := uploads.Upload(ctx, u.ID, nil); !errors.Is(err, ErrNoFile) {
		t.Errorf("nil file: expected ErrNoFile, got %v", err)
	}
	if _, err := uploads.Upload(ctx, u.ID, fileHeader(t, "image", "notes.txt", []byte("just some text"))); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("text file: expected ErrUnsupportedFile, got %v", err)
	}
	if _, err := uploads.Upload(ctx, u.ID, fileHeader(t, "image", "big.png", pngBytes)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("large file: expected ErrFileTooLarge, got %v", err)
	}
	if _, err := uploads.Upload(ctx, u.ID, fileHeader(t, "image", "empty.png", nil)); !errors.Is(err, ErrNoFile) {
		t.Errorf("empty file: expected ErrNoFile, got %v", err)
	}
	if files.count() != 0 {
		t.Errorf("rejected uploads were stored: %d", files.count())
	}
}
