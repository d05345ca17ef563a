package repository

import (
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

type RestaurantInfoRepository struct {
	DB *gorm.DB
}

func NewRestaurantInfoRepository(db *gorm.DB) *RestaurantInfoRepository {
	return &RestaurantInfoRepository{DB: db}
}

// Get returns the singleton info row.
func (r *RestaurantInfoRepository) Get() (*entity.RestaurantInfo, error) {
	var info entity.RestaurantInfo
	if err := r.DB.First(&info, entity.RestaurantInfoID).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Save writes the whole singleton row. Merging submitted fields into the
// current row happens above this layer; the JSON-serialized columns
// (opening_hours, social_media) need a full-struct write.
func (r *RestaurantInfoRepository) Save(info *entity.RestaurantInfo) error {
	info.ID = entity.RestaurantInfoID
	return r.DB.Save(info).Error
}
