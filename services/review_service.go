package services

import (
	"fmt"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/repository"
)

type ReviewService struct {
	Repo  *repository.ReviewRepository
	Cache *cache.Store
}

func NewReviewService(repo *repository.ReviewRepository, c *cache.Store) *ReviewService {
	return &ReviewService{Repo: repo, Cache: c}
}

func (s *ReviewService) List(approvedOnly bool) ([]entity.Review, error) {
	filter := fmt.Sprintf("approved=%t", approvedOnly)
	v, err := s.Cache.Get(ResourceReviews, filter, func() (any, error) {
		return s.Repo.FindAll(approvedOnly)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Review), nil
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	if id == 0 {
		return nil, ErrMissingParameter
	}
	return s.Repo.FindByID(id)
}

// Create stores a visitor submission. Reviews always enter unapproved,
// whatever the caller sent.
func (s *ReviewService) Create(review *entity.Review) error {
	review.IsApproved = false
	if err := s.Repo.Create(review); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceReviews)
	return nil
}

func (s *ReviewService) Update(id uint, fields map[string]any) (*entity.Review, error) {
	review, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceReviews)
	return review, nil
}

func (s *ReviewService) Approve(id uint) (*entity.Review, error) {
	review, err := s.Repo.Approve(id)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceReviews)
	return review, nil
}

func (s *ReviewService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceReviews)
	return nil
}
