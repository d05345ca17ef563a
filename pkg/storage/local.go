package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no object exists at the requested path.
var ErrNotFound = fmt.Errorf("object not found")

// Local stores objects on the filesystem under baseDir/<bucket>/<path>.
type Local struct {
	baseDir string
	baseURL string
}

func NewLocal(baseDir, baseURL string) (*Local, error) {
	for _, b := range []string{BucketMenuImages, BucketMenuVideos, BucketGalleryImages, BucketGalleryVideos} {
		if err := os.MkdirAll(filepath.Join(baseDir, b), 0755); err != nil {
			return nil, fmt.Errorf("create bucket dir %s: %w", b, err)
		}
	}
	return &Local{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Save(ctx context.Context, bucket, path string, r io.Reader) (string, error) {
	filePath, err := l.safeJoin(bucket, path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("close object: %w", err)
	}
	return path, nil
}

func (l *Local) Open(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	filePath, err := l.safeJoin(bucket, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open object: %w", err)
	}
	return f, nil
}

func (l *Local) Delete(ctx context.Context, bucket, path string) error {
	filePath, err := l.safeJoin(bucket, path)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (l *Local) PublicURL(bucket, path string) string {
	return l.baseURL + "/storage/" + bucket + "/" + path
}

// safeJoin resolves path inside the bucket directory and rejects traversal.
func (l *Local) safeJoin(bucket, path string) (string, error) {
	if !ValidBucket(bucket) {
		return "", fmt.Errorf("unknown bucket %q", bucket)
	}
	absBase, err := filepath.Abs(filepath.Join(l.baseDir, bucket))
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(l.baseDir, bucket, path))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
