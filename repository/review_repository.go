package repository

import (
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// FindAll returns reviews newest first. The public site passes
// approvedOnly=true; the moderation screen reads everything.
func (r *ReviewRepository) FindAll(approvedOnly bool) ([]entity.Review, error) {
	q := r.DB.Order("created_at DESC")
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}
	var reviews []entity.Review
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Update(id uint, fields map[string]any) (*entity.Review, error) {
	res := r.DB.Model(&entity.Review{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Approve flips the approval flag. Approving an already-approved review is a
// silent success.
func (r *ReviewRepository) Approve(id uint) (*entity.Review, error) {
	if err := r.DB.Model(&entity.Review{}).Where("id = ?", id).
		Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ReviewRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) CountPendingApproval() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Review{}).Where("is_approved = ?", false).Count(&n).Error
	return n, err
}
