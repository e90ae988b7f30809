package domain

import "time"

// AuthProvider names how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a dashboard operator.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	CreatedAt      time.Time    `json:"createdAt"`
}
