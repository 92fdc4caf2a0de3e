package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := store.Save(context.Background(), "7/pic.png", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "/uploads/7/pic.png" {
		t.Errorf("url = %q", url)
	}

	got, err := os.ReadFile(filepath.Join(dir, "7", "pic.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Errorf("content = %q", got)
	}

	if err := store.Delete(context.Background(), "7/pic.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "7", "pic.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still exists: %v", err)
	}
	// deleting twice is not an error
	if err := store.Delete(context.Background(), "7/pic.png"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"", "/etc/passwd", "../outside", "a/../../b", `a\b`} {
		if _, err := store.Save(context.Background(), key, "", nil); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

type fakeObjects struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_Save(t *testing.T) {
	fake := &fakeObjects{}
	store := newS3Storage(fake, "art", "https://cdn.example.com")

	url, err := store.Save(context.Background(), "generated/1.svg", "image/svg+xml", []byte("<svg/>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/generated/1.svg" {
		t.Errorf("url = %q", url)
	}
	if len(fake.puts) != 1 {
		t.Fatalf("puts = %d", len(fake.puts))
	}
	in := fake.puts[0]
	if aws.ToString(in.Bucket) != "art" || aws.ToString(in.Key) != "generated/1.svg" {
		t.Errorf("bucket/key = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "image/svg+xml" || aws.ToInt64(in.ContentLength) != 6 {
		t.Errorf("content type = %s, length = %d", aws.ToString(in.ContentType), aws.ToInt64(in.ContentLength))
	}
	if string(fake.body) != "<svg/>" {
		t.Errorf("body = %q", fake.body)
	}
}

func TestS3Storage_Errors(t *testing.T) {
	fake := &fakeObjects{err: errors.New("boom")}
	store := newS3Storage(fake, "art", "https://cdn.example.com")

	if _, err := store.Save(context.Background(), "a.png", "image/png", nil); err == nil {
		t.Error("expected upload error")
	}
	if err := store.Delete(context.Background(), "a.png"); err == nil {
		t.Error("expected delete error")
	}
	if err := store.Delete(context.Background(), "../a.png"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
