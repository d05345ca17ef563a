package repository

import (
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// FindAll returns reservations soonest first, optionally filtered by status
// and/or exact date.
func (r *ReservationRepository) FindAll(status, date string) ([]entity.Reservation, error) {
	q := r.DB.Order("reservation_date ASC, reservation_time ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if date != "" {
		q = q.Where("reservation_date = ?", date)
	}
	var reservations []entity.Reservation
	err := q.Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

// UpdateStatus sets the status and bumps updated_at, returning the record.
func (r *ReservationRepository) UpdateStatus(id uint, status string) (*entity.Reservation, error) {
	res := r.DB.Model(&entity.Reservation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *ReservationRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// FindRecent returns the latest-created reservations for the dashboard.
func (r *ReservationRepository) FindRecent(limit int) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&reservations).Error
	return reservations, err
}
