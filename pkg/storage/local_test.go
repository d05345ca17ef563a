package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Local {
	t.Helper()
	s, err := NewLocal(t.TempDir(), "http://localhost:8000")
	require.NoError(t, err)
	return s
}

func TestLocalSaveOpenDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	key, err := s.Save(ctx, BucketMenuImages, "poulet-dg.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "poulet-dg.jpg", key)

	rc, err := s.Open(ctx, BucketMenuImages, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "jpegdata", string(data))

	require.NoError(t, s.Delete(ctx, BucketMenuImages, key))
	_, err = s.Open(ctx, BucketMenuImages, key)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalBucketsAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, BucketGalleryImages, "salle.jpg", strings.NewReader("a"))
	require.NoError(t, err)

	_, err = s.Open(ctx, BucketMenuImages, "salle.jpg")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalRejectsUnknownBucket(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), "secrets", "x", strings.NewReader("a"))
	assert.Error(t, err)
}

func TestLocalRejectsTraversal(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), BucketMenuImages, "../../etc/passwd", strings.NewReader("a"))
	assert.Error(t, err)

	_, err = s.Open(context.Background(), BucketMenuImages, "../"+BucketMenuVideos+"/x")
	assert.Error(t, err)
}

func TestLocalPublicURL(t *testing.T) {
	s, err := NewLocal(t.TempDir(), "https://lareserve.bj/")
	require.NoError(t, err)

	url := s.PublicURL(BucketGalleryVideos, "events/concert.mp4")
	assert.Equal(t, "https://lareserve.bj/storage/gallery-videos/events/concert.mp4", url)
}
