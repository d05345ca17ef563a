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

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

type createReviewRequest struct {
	AuthorName     string `json:"author_name" binding:"required"`
	AuthorAvatar   string `json:"author_avatar"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	Comment        string `json:"comment" binding:"required"`
	CuisineRating  *int   `json:"cuisine_rating" binding:"omitempty,min=1,max=5"`
	ServiceRating  *int   `json:"service_rating" binding:"omitempty,min=1,max=5"`
	AmbianceRating *int   `json:"ambiance_rating" binding:"omitempty,min=1,max=5"`
}

// GET /api/reviews returns approved reviews only.
func (ctl *ReviewController) PublicList(c *gin.Context) {
	reviews, err := ctl.Service.List(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /api/reviews accepts a visitor submission, which enters moderation unapproved.
func (ctl *ReviewController) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review := entity.Review{
		AuthorName:     req.AuthorName,
		AuthorAvatar:   req.AuthorAvatar,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CuisineRating:  req.CuisineRating,
		ServiceRating:  req.ServiceRating,
		AmbianceRating: req.AmbianceRating,
	}
	if err := ctl.Service.Create(&review); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /admin/reviews is the moderation view, everything included.
func (ctl *ReviewController) AdminList(c *gin.Context) {
	reviews, err := ctl.Service.List(false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

type updateReviewRequest struct {
	AuthorName     *string `json:"author_name"`
	AuthorAvatar   *string `json:"author_avatar"`
	Rating         *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment        *string `json:"comment"`
	CuisineRating  *int    `json:"cuisine_rating" binding:"omitempty,min=1,max=5"`
	ServiceRating  *int    `json:"service_rating" binding:"omitempty,min=1,max=5"`
	AmbianceRating *int    `json:"ambiance_rating" binding:"omitempty,min=1,max=5"`
	IsApproved     *bool   `json:"is_approved"`
}

// PATCH /admin/reviews/:id
func (ctl *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.AuthorName != nil {
		fields["author_name"] = *req.AuthorName
	}
	if req.AuthorAvatar != nil {
		fields["author_avatar"] = *req.AuthorAvatar
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}
	if req.CuisineRating != nil {
		fields["cuisine_rating"] = *req.CuisineRating
	}
	if req.ServiceRating != nil {
		fields["service_rating"] = *req.ServiceRating
	}
	if req.AmbianceRating != nil {
		fields["ambiance_rating"] = *req.AmbianceRating
	}
	if req.IsApproved != nil {
		fields["is_approved"] = *req.IsApproved
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	review, err := ctl.Service.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, review)
}

// PATCH /admin/reviews/:id/approve
func (ctl *ReviewController) Approve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	review, err := ctl.Service.Approve(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, review)
}

// DELETE /admin/reviews/:id
func (ctl *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}
