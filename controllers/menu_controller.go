package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/resp"
	"lareserve-backend/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

type createMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"gte=0"`
	Category    string `json:"category" binding:"required,oneof=starters mains desserts drinks wines"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	IsAvailable bool   `json:"is_available"`
}

type updateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Category    *string `json:"category" binding:"omitempty,oneof=starters mains desserts drinks wines"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
	IsAvailable *bool   `json:"is_available"`
}

// GET /api/menu serves the public card, available items only.
func (ctl *MenuController) PublicList(c *gin.Context) {
	items, err := ctl.Service.List(c.Query("category"), true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMissingParameter) {
			resp.BadRequest(c, "invalid id")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /admin/menu is the management view and includes unavailable items.
func (ctl *MenuController) AdminList(c *gin.Context) {
	items, err := ctl.Service.List(c.Query("category"), false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		IsAvailable: req.IsAvailable,
	}
	if err := ctl.Service.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		fields["video_url"] = *req.VideoURL
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	item, err := ctl.Service.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
