package services

import (
	"fmt"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/repository"
)

type ReservationService struct {
	Repo  *repository.ReservationRepository
	Cache *cache.Store
}

func NewReservationService(repo *repository.ReservationRepository, c *cache.Store) *ReservationService {
	return &ReservationService{Repo: repo, Cache: c}
}

func (s *ReservationService) List(status, date string) ([]entity.Reservation, error) {
	filter := fmt.Sprintf("status=%s&date=%s", status, date)
	v, err := s.Cache.Get(ResourceReservations, filter, func() (any, error) {
		return s.Repo.FindAll(status, date)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Reservation), nil
}

// ListByDate is the date-keyed read; it is never issued with an empty date.
func (s *ReservationService) ListByDate(date string) ([]entity.Reservation, error) {
	if date == "" {
		return nil, ErrMissingParameter
	}
	return s.List("", date)
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	if id == 0 {
		return nil, ErrMissingParameter
	}
	return s.Repo.FindByID(id)
}

// Create stores a visitor booking. Every reservation starts at pending.
func (s *ReservationService) Create(res *entity.Reservation) error {
	res.Status = entity.ReservationPending
	if err := s.Repo.Create(res); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceReservations)
	return nil
}

func (s *ReservationService) UpdateStatus(id uint, status string) (*entity.Reservation, error) {
	res, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceReservations)
	return res, nil
}

func (s *ReservationService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceReservations)
	return nil
}
