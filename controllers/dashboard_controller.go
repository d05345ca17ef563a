package controllers

import (
	"github.com/gin-gonic/gin"

	"lareserve-backend/entity"
	"lareserve-backend/pkg/resp"
	"lareserve-backend/repository"
)

type DashboardController struct {
	Menu         *repository.MenuRepository
	Reviews      *repository.ReviewRepository
	Reservations *repository.ReservationRepository
	Gallery      *repository.GalleryRepository
}

func NewDashboardController(
	menu *repository.MenuRepository,
	reviews *repository.ReviewRepository,
	reservations *repository.ReservationRepository,
	gallery *repository.GalleryRepository,
) *DashboardController {
	return &DashboardController{Menu: menu, Reviews: reviews, Reservations: reservations, Gallery: gallery}
}

// GET /admin/dashboard returns headline counts plus the latest bookings.
func (ctl *DashboardController) Dashboard(c *gin.Context) {
	menuCount, err := ctl.Menu.Count()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	pendingReservations, err := ctl.Reservations.CountByStatus(entity.ReservationPending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	pendingReviews, err := ctl.Reviews.CountPendingApproval()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	galleryCount, err := ctl.Gallery.Count()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	recent, err := ctl.Reservations.FindRecent(5)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"menu_items":           menuCount,
		"pending_reservations": pendingReservations,
		"pending_reviews":      pendingReviews,
		"gallery_items":        galleryCount,
		"recent_reservations":  recent,
	})
}
