package repository

import (
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) FindAll(category string, featuredOnly bool) ([]entity.GalleryItem, error) {
	q := r.DB.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var items []entity.GalleryItem
	err := q.Find(&items).Error
	return items, err
}

func (r *GalleryRepository) FindByID(id uint) (*entity.GalleryItem, error) {
	var item entity.GalleryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) Create(item *entity.GalleryItem) error {
	return r.DB.Create(item).Error
}

func (r *GalleryRepository) Update(id uint, fields map[string]any) (*entity.GalleryItem, error) {
	res := r.DB.Model(&entity.GalleryItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *GalleryRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.GalleryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GalleryRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.GalleryItem{}).Count(&n).Error
	return n, err
}
