package entity

import "time"

// Session is a server-tracked login. The JWT handed to the client carries
// TokenID; the row existing (and not being expired) is what makes the token
// valid, so sign-out can revoke it.
type Session struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TokenID     string    `gorm:"uniqueIndex" json:"token_id"`
	AdminUserID uint      `json:"admin_user_id"`
	AdminUser   AdminUser `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}
