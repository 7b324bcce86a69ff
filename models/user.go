package models

import "time"

// User is an account that owns credential records.
type User struct {
	// UserID is assigned by the store on creation.
	UserID int64 `json:"id"`

	// Name is the display name given at signup.
	Name string `json:"name"`

	// Email is unique across users and always stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignupRequest is the payload of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login. Token is a bearer token to be
// sent in the Authorization header of subsequent requests.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
