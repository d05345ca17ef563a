package configs

import (
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

// SeedAdmin creates the initial admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	// Emails are compared lowercased at login, so store them lowercased too.
	email := strings.ToLower(cfg.AdminEmail)

	var count int64
	db.Model(&entity.AdminUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.AdminUser{
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedRestaurantInfo ensures the singleton info row exists.
func SeedRestaurantInfo(db *gorm.DB) error {
	openDay := entity.DayHours{Open: "14:00", Close: "03:00"}
	info := entity.RestaurantInfo{
		ID:            entity.RestaurantInfoID,
		Name:          "La Réserve",
		Description:   "Une expérience culinaire africaine d'exception",
		Address:       "9C77+47F, Cotonou, Bénin",
		Phone:         "91 11 71 71",
		Email:         "contact@lareserve.bj",
		GoogleMapsURL: "https://maps.app.goo.gl/hDddYVyKbs7ATkWW8",
		OpeningHours: entity.OpeningHours{
			Monday:    entity.DayHours{Closed: true},
			Tuesday:   openDay,
			Wednesday: openDay,
			Thursday:  openDay,
			Friday:    openDay,
			Saturday:  openDay,
			Sunday:    openDay,
		},
	}
	return db.Attrs(info).
		FirstOrCreate(&entity.RestaurantInfo{}, entity.RestaurantInfo{ID: entity.RestaurantInfoID}).Error
}

// SeedSampleContent loads starter menu, review and gallery rows so a fresh
// install renders a non-empty site. Runs only against empty tables.
func SeedSampleContent(db *gorm.DB) error {
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count == 0 {
		items := []entity.MenuItem{
			{Name: "Brochette de Gésiers", Description: "Brochette de gésiers marinés et grillés aux épices africaines", Price: 4500, Category: entity.CategoryStarters, IsAvailable: true},
			{Name: "Sauté de Fromage Warangachi", Description: "Fromage local warangachi sauté aux fines herbes et épices", Price: 5500, Category: entity.CategoryStarters, IsAvailable: true},
			{Name: "Viande Mouton Fris", Description: "Viande de mouton frite accompagnée de riz et sauce aux légumes frais", Price: 8500, Category: entity.CategoryMains, IsAvailable: true},
			{Name: "Poulet DG", Description: "Poulet frit servi avec des bananes plantains et légumes sautés", Price: 9500, Category: entity.CategoryMains, IsAvailable: true},
			{Name: "Vin Blanc - Château", Description: "Sélection de vin blanc sec, parfait avec les fruits de mer", Price: 15000, Category: entity.CategoryWines, IsAvailable: true},
			{Name: "Plessis-Duval Saumur", Description: "Vin rouge d'exception, millésime 2022", Price: 25000, Category: entity.CategoryWines, IsAvailable: true},
			{Name: "Jus de Bissap", Description: "Jus d'hibiscus frais maison", Price: 1500, Category: entity.CategoryDrinks, IsAvailable: true},
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	db.Model(&entity.Review{}).Count(&count)
	if count == 0 {
		four, five := 4, 5
		reviews := []entity.Review{
			{AuthorName: "Ampah Johnson", Rating: 4, Comment: "Satisfait à chaque passage! Lieu discret réservant de belles surprises au bar comme en cuisine! Top!", IsApproved: true},
			{AuthorName: "Laura M", Rating: 4, Comment: "Belle cave et service de qualité. J'y retournerai avec plaisir!", CuisineRating: &four, ServiceRating: &five, AmbianceRating: &four, IsApproved: true},
			{AuthorName: "SOHOUDJI Cégnannou", Rating: 4, Comment: "Calme et discret. Très bon lieu de détente", IsApproved: true},
			{AuthorName: "Fresnel Houenaze", Rating: 5, Comment: "cool", IsApproved: true},
		}
		if err := db.Create(&reviews).Error; err != nil {
			return err
		}
	}

	db.Model(&entity.GalleryItem{}).Count(&count)
	if count == 0 {
		items := []entity.GalleryItem{
			{Title: "Salle principale", Category: entity.GalleryInterior, ImageURL: "/storage/gallery-images/salle.jpg", IsFeatured: true},
			{Title: "Notre cave", Category: entity.GalleryAmbiance, ImageURL: "/storage/gallery-images/cave.jpg"},
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	return nil
}
