package entity

import "time"

const (
	GalleryInterior = "interior"
	GalleryFood     = "food"
	GalleryEvents   = "events"
	GalleryAmbiance = "ambiance"
)

func GalleryCategories() []string {
	return []string{GalleryInterior, GalleryFood, GalleryEvents, GalleryAmbiance}
}

type GalleryItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url,omitempty"`
	Category    string    `gorm:"index" json:"category"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}
