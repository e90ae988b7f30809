package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// User is a row of the users table.
type User struct {
	UserID         string      `db:"user_id"`
	Username       string      `db:"username"`
	Name           string      `db:"name"`
	Email          pgtype.Text `db:"email"`
	PasswordHash   pgtype.Text `db:"password_hash"`
	AuthProvider   string      `db:"auth_provider"`
	ProviderUserID pgtype.Text `db:"provider_user_id"`
	CreatedAt      time.Time   `db:"created_at"`
}
