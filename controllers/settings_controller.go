package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/resp"
	"lareserve-backend/services"
)

type SettingsController struct {
	Service *services.RestaurantInfoService
}

func NewSettingsController(s *services.RestaurantInfoService) *SettingsController {
	return &SettingsController{Service: s}
}

type updateSettingsRequest struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	Address       *string              `json:"address"`
	Phone         *string              `json:"phone"`
	Email         *string              `json:"email" binding:"omitempty,email"`
	GoogleMapsURL *string              `json:"google_maps_url"`
	OpeningHours  *entity.OpeningHours `json:"opening_hours"`
	SocialMedia   *entity.SocialMedia  `json:"social_media"`
}

// GET /api/restaurant, also used by the admin settings screen.
func (ctl *SettingsController) Get(c *gin.Context) {
	info, err := ctl.Service.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant info not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, info)
}

// PUT /admin/settings merges the submitted fields into the singleton row.
func (ctl *SettingsController) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	info, err := ctl.Service.Update(func(info *entity.RestaurantInfo) {
		if req.Name != nil {
			info.Name = *req.Name
		}
		if req.Description != nil {
			info.Description = *req.Description
		}
		if req.Address != nil {
			info.Address = *req.Address
		}
		if req.Phone != nil {
			info.Phone = *req.Phone
		}
		if req.Email != nil {
			info.Email = *req.Email
		}
		if req.GoogleMapsURL != nil {
			info.GoogleMapsURL = *req.GoogleMapsURL
		}
		if req.OpeningHours != nil {
			info.OpeningHours = *req.OpeningHours
		}
		if req.SocialMedia != nil {
			info.SocialMedia = *req.SocialMedia
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant info not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, info)
}
