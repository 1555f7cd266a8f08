package domain

import (
	"errors"
	"time"
)

var ErrInvalidUserData = errors.New("invalid user data")
var ErrEmailTaken = errors.New("email already used")
var ErrInvalidCredentials = errors.New("wrong email or password")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. The password credential is kept only as
// a bcrypt hash and is never serialized into a response.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
