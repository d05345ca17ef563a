package entity

import "time"

type Review struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	AuthorName     string    `json:"author_name"`
	AuthorAvatar   string    `json:"author_avatar,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CuisineRating  *int      `json:"cuisine_rating,omitempty"`
	ServiceRating  *int      `json:"service_rating,omitempty"`
	AmbianceRating *int      `json:"ambiance_rating,omitempty"`
	IsApproved     bool      `gorm:"index" json:"is_approved"`
	CreatedAt      time.Time `json:"created_at"`
}
