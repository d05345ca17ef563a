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

type GalleryController struct {
	Service *services.GalleryService
}

func NewGalleryController(s *services.GalleryService) *GalleryController {
	return &GalleryController{Service: s}
}

type createGalleryItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	Category    string `json:"category" binding:"required,oneof=interior food events ambiance"`
	IsFeatured  bool   `json:"is_featured"`
}

type updateGalleryItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
	Category    *string `json:"category" binding:"omitempty,oneof=interior food events ambiance"`
	IsFeatured  *bool   `json:"is_featured"`
}

// GET /api/gallery?category=
func (ctl *GalleryController) PublicList(c *gin.Context) {
	items, err := ctl.Service.List(c.Query("category"), false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/gallery/featured
func (ctl *GalleryController) Featured(c *gin.Context) {
	items, err := ctl.Service.List("", true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/gallery
func (ctl *GalleryController) Create(c *gin.Context) {
	var req createGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Category:    req.Category,
		IsFeatured:  req.IsFeatured,
	}
	if err := ctl.Service.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/gallery/:id
func (ctl *GalleryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		fields["video_url"] = *req.VideoURL
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	item, err := ctl.Service.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/gallery/:id
func (ctl *GalleryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "gallery item deleted"})
}
