package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lareserve-backend/configs"
	"lareserve-backend/controllers"
	"lareserve-backend/entity"
	"lareserve-backend/middlewares"
	"lareserve-backend/pkg/cache"
	"lareserve-backend/pkg/storage"
	"lareserve-backend/repository"
	"lareserve-backend/services"
	"lareserve-backend/ws"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. Everything is constructed here and passed down explicitly so tests
// can run against their own db/config/storage.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store storage.Store, hub *ws.SessionHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	readCache := cache.New(cache.DefaultTTL)

	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	infoRepo := repository.NewRestaurantInfoRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authSvc := services.NewAuthService(db, sessionRepo, cfg)

	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo, readCache))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(reviewRepo, readCache))
	reservationCtrl := controllers.NewReservationController(services.NewReservationService(reservationRepo, readCache))
	galleryCtrl := controllers.NewGalleryController(services.NewGalleryService(galleryRepo, readCache))
	settingsCtrl := controllers.NewSettingsController(services.NewRestaurantInfoService(infoRepo, readCache))
	authCtrl := controllers.NewAuthController(authSvc, hub)
	uploadCtrl := controllers.NewUploadController(store)
	dashboardCtrl := controllers.NewDashboardController(menuRepo, reviewRepo, reservationRepo, galleryRepo)

	// Public site
	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.PublicList)
		api.GET("/menu/:id", menuCtrl.Get)
		api.GET("/reviews", reviewCtrl.PublicList)
		api.POST("/reviews", reviewCtrl.Create)
		api.POST("/reservations", reservationCtrl.Create)
		api.GET("/gallery", galleryCtrl.PublicList)
		api.GET("/gallery/featured", galleryCtrl.Featured)
		api.GET("/restaurant", settingsCtrl.Get)
	}

	// Admin login is the only unguarded admin route.
	r.POST("/admin/login", authCtrl.Login)

	admin := r.Group("/admin", middlewares.AuthMiddleware(authSvc, entity.RoleAdmin, entity.RoleManager))
	{
		admin.POST("/logout", authCtrl.Logout)
		admin.GET("/session", authCtrl.Session)
		admin.GET("/session/events", hub.HandleWebSocket)

		admin.GET("/dashboard", dashboardCtrl.Dashboard)

		admin.GET("/menu", menuCtrl.AdminList)
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/reviews", reviewCtrl.AdminList)
		admin.PATCH("/reviews/:id", reviewCtrl.Update)
		admin.PATCH("/reviews/:id/approve", reviewCtrl.Approve)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)

		admin.GET("/reservations", reservationCtrl.AdminList)
		admin.GET("/reservations/day", reservationCtrl.ListByDay)
		admin.PATCH("/reservations/:id/status", reservationCtrl.UpdateStatus)
		admin.DELETE("/reservations/:id", reservationCtrl.Delete)

		admin.GET("/gallery", galleryCtrl.PublicList)
		admin.POST("/gallery", galleryCtrl.Create)
		admin.PATCH("/gallery/:id", galleryCtrl.Update)
		admin.DELETE("/gallery/:id", galleryCtrl.Delete)

		admin.PUT("/settings", settingsCtrl.Update)

		admin.POST("/uploads/:bucket", uploadCtrl.Upload)
	}
}
