package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the public view of an account. It never carries the
// password hash.
type UserResult struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
