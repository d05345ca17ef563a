package services

import "errors"

// ErrMissingParameter marks a read that was never issued because a required
// parameter was empty.
var ErrMissingParameter = errors.New("missing required parameter")

// ErrInvalidCredentials is returned on a failed login, without distinguishing
// unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired is returned when a presented token maps to no live session.
var ErrSessionExpired = errors.New("session expired")

// Resource type names, shared as cache-invalidation keys. They match the
// logical table names.
const (
	ResourceMenuItems      = "menu_items"
	ResourceReviews        = "reviews"
	ResourceReservations   = "reservations"
	ResourceGallery        = "gallery"
	ResourceRestaurantInfo = "restaurant_info"
)
