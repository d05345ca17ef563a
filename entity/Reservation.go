package entity

import "time"

// Reservation lifecycle. Every reservation starts at pending; the admin moves
// it forward (or cancels it) from there.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

func ReservationStatuses() []string {
	return []string{ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted}
}

type Reservation struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ReservationDate string    `gorm:"index" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string    `json:"reservation_time"`              // HH:MM slot
	NumberOfGuests  int       `json:"number_of_guests"`              // 9 covers the "9+" bucket
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `gorm:"index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
