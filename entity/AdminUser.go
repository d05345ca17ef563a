package entity

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

type AdminUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
