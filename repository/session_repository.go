package repository

import (
	"time"

	"gorm.io/gorm"

	"lareserve-backend/entity"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *entity.Session) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByTokenID(tokenID string) (*entity.Session, error) {
	var s entity.Session
	err := r.DB.Preload("AdminUser").Where("token_id = ?", tokenID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByTokenID(tokenID string) error {
	return r.DB.Where("token_id = ?", tokenID).Delete(&entity.Session{}).Error
}

// DeleteExpired clears sessions whose expiry has passed.
func (r *SessionRepository) DeleteExpired() error {
	return r.DB.Where("expires_at < ?", time.Now()).Delete(&entity.Session{}).Error
}
