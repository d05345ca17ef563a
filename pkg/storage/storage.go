package storage

import (
	"context"
	"io"
)

// Bucket names, one per media kind.
const (
	BucketMenuImages    = "menu-images"
	BucketMenuVideos    = "menu-videos"
	BucketGalleryImages = "gallery-images"
	BucketGalleryVideos = "gallery-videos"
)

func ValidBucket(name string) bool {
	switch name {
	case BucketMenuImages, BucketMenuVideos, BucketGalleryImages, BucketGalleryVideos:
		return true
	}
	return false
}

// Store holds uploaded media under per-bucket paths and resolves a fetchable
// URL for each stored object.
type Store interface {
	Save(ctx context.Context, bucket, path string, r io.Reader) (string, error)
	Open(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, bucket, path string) error
	PublicURL(bucket, path string) string
}
