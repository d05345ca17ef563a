package services

import (
	"lareserve-backend/entity"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/repository"
)

type RestaurantInfoService struct {
	Repo  *repository.RestaurantInfoRepository
	Cache *cache.Store
}

func NewRestaurantInfoService(repo *repository.RestaurantInfoRepository, c *cache.Store) *RestaurantInfoService {
	return &RestaurantInfoService{Repo: repo, Cache: c}
}

func (s *RestaurantInfoService) Get() (*entity.RestaurantInfo, error) {
	v, err := s.Cache.Get(ResourceRestaurantInfo, "", func() (any, error) {
		return s.Repo.Get()
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.RestaurantInfo), nil
}

// Update merges apply onto the current row and persists it. Concurrent saves
// are last-write-wins.
func (s *RestaurantInfoService) Update(apply func(*entity.RestaurantInfo)) (*entity.RestaurantInfo, error) {
	current, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	info := *current
	apply(&info)
	if err := s.Repo.Save(&info); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ResourceRestaurantInfo)
	return &info, nil
}
