package users

import "time"

// CaptivePortalUser is the registration payload from the captive portal.
type CaptivePortalUser struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	MarketingOptIn bool   `json:"marketingOptIn"`
}

// User is a stored registration record.
type User struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MarketingOptIn bool      `json:"marketing_opt_in"`
	CreatedAt      time.Time `json:"created_at"`
}
