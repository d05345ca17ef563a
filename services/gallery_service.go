package services

import (
	"fmt"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/repository"
)

type GalleryService struct {
	Repo  *repository.GalleryRepository
	Cache *cache.Store
}

func NewGalleryService(repo *repository.GalleryRepository, c *cache.Store) *GalleryService {
	return &GalleryService{Repo: repo, Cache: c}
}

func (s *GalleryService) List(category string, featuredOnly bool) ([]entity.GalleryItem, error) {
	filter := fmt.Sprintf("category=%s&featured=%t", category, featuredOnly)
	v, err := s.Cache.Get(ResourceGallery, filter, func() (any, error) {
		return s.Repo.FindAll(category, featuredOnly)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.GalleryItem), nil
}

func (s *GalleryService) Get(id uint) (*entity.GalleryItem, error) {
	if id == 0 {
		return nil, ErrMissingParameter
	}
	return s.Repo.FindByID(id)
}

func (s *GalleryService) Create(item *entity.GalleryItem) error {
	if err := s.Repo.Create(item); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceGallery)
	return nil
}

func (s *GalleryService) Update(id uint, fields map[string]any) (*entity.GalleryItem, error) {
	item, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceGallery)
	return item, nil
}

func (s *GalleryService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceGallery)
	return nil
}
