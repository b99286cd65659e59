package model

import "time"

// Admin represents a backend administrator account. Accounts are seeded
// out-of-band (cmd/create-admin); the API never creates or mutates them.
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// AdminProfile is the admin shape embedded in auth responses.
// The password hash never leaves the service layer.
type AdminProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Profile strips an Admin down to its client-visible fields.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{ID: a.ID, Username: a.Username, Name: a.Name}
}
