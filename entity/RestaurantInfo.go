package entity

import "time"

// RestaurantInfoID is the fixed primary key of the singleton row.
const RestaurantInfoID uint = 1

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type OpeningHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
}

type RestaurantInfo struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Address       string       `json:"address"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	GoogleMapsURL string       `json:"google_maps_url"`
	OpeningHours  OpeningHours `gorm:"serializer:json" json:"opening_hours"`
	SocialMedia   SocialMedia  `gorm:"serializer:json" json:"social_media"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
