package entity

import "time"

// Menu categories shared by the public site and the admin forms.
const (
	CategoryStarters = "starters"
	CategoryMains    = "mains"
	CategoryDesserts = "desserts"
	CategoryDrinks   = "drinks"
	CategoryWines    = "wines"
)

func MenuCategories() []string {
	return []string{CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks, CategoryWines}
}

type MenuItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // minor-unit-free amount (FCFA)
	Category    string    `gorm:"index" json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
