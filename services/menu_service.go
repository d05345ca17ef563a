package services

import (
	"fmt"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/repository"
)

type MenuService struct {
	Repo  *repository.MenuRepository
	Cache *cache.Store
}

func NewMenuService(repo *repository.MenuRepository, c *cache.Store) *MenuService {
	return &MenuService{Repo: repo, Cache: c}
}

func (s *MenuService) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	filter := fmt.Sprintf("category=%s&available=%t", category, availableOnly)
	v, err := s.Cache.Get(ResourceMenuItems, filter, func() (any, error) {
		return s.Repo.FindAll(category, availableOnly)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.MenuItem), nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	if id == 0 {
		return nil, ErrMissingParameter
	}
	v, err := s.Cache.Get(ResourceMenuItems, fmt.Sprintf("id=%d", id), func() (any, error) {
		return s.Repo.FindByID(id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.MenuItem), nil
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	if err := s.Repo.Create(item); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceMenuItems)
	return nil
}

func (s *MenuService) Update(id uint, fields map[string]any) (*entity.MenuItem, error) {
	item, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceMenuItems)
	return item, nil
}

func (s *MenuService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(ResourceMenuItems)
	return nil
}
