package models

import "time"

// User represents a registered user account.
//
// PasswordHash holds the bcrypt digest of the user's secret and is never
// serialized; API responses expose the PublicUser view instead.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Username is the unique login name, matched case-sensitively.
	Username string `json:"username"`

	// Email is the user's email address (unique).
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the caller-visible projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the projection of the user safe to include in responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
