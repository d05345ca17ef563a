package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

func TestGalleryRepositoryFilters(t *testing.T) {
	repo := NewGalleryRepository(openTestDB(t))

	featured := entity.GalleryItem{Title: "Salle principale", Category: entity.GalleryInterior,
		ImageURL: "/storage/gallery-images/salle.jpg", IsFeatured: true}
	plain := entity.GalleryItem{Title: "Notre cave", Category: entity.GalleryAmbiance,
		ImageURL: "/storage/gallery-images/cave.jpg"}
	require.NoError(t, repo.Create(&featured))
	require.NoError(t, repo.Create(&plain))

	all, err := repo.FindAll("", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	interior, err := repo.FindAll(entity.GalleryInterior, false)
	require.NoError(t, err)
	require.Len(t, interior, 1)
	assert.Equal(t, "Salle principale", interior[0].Title)

	onlyFeatured, err := repo.FindAll("", true)
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.True(t, onlyFeatured[0].IsFeatured)
}

func TestGalleryRepositoryUpdateDelete(t *testing.T) {
	repo := NewGalleryRepository(openTestDB(t))

	item := entity.GalleryItem{Title: "Notre cave", Category: entity.GalleryAmbiance, ImageURL: "x.jpg"}
	require.NoError(t, repo.Create(&item))

	updated, err := repo.Update(item.ID, map[string]any{"is_featured": true})
	require.NoError(t, err)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "Notre cave", updated.Title)

	require.NoError(t, repo.Delete(item.ID))
	_, err = repo.FindByID(item.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
