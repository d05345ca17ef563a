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

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

type createReservationRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	ReservationDate string `json:"reservation_date" binding:"required,datetime=2006-01-02"`
	ReservationTime string `json:"reservation_time" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

type updateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// POST /api/reservations creates a visitor booking, always starting pending.
func (ctl *ReservationController) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := entity.Reservation{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	}
	if err := ctl.Service.Create(&res); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /admin/reservations?status=&date=
func (ctl *ReservationController) AdminList(c *gin.Context) {
	status := c.Query("status")
	if status == "all" {
		status = ""
	}
	reservations, err := ctl.Service.List(status, c.Query("date"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}

// GET /admin/reservations/day?date=YYYY-MM-DD lists one day's bookings;
// the date is mandatory.
func (ctl *ReservationController) ListByDay(c *gin.Context) {
	reservations, err := ctl.Service.ListByDate(c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrMissingParameter) {
			resp.BadRequest(c, "date is required")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}

// PATCH /admin/reservations/:id/status
func (ctl *ReservationController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "reservation not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}

// DELETE /admin/reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "reservation not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reservation deleted"})
}
