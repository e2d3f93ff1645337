package dto

import (
	"time"

	"github.com/google/uuid"
)

// Password carries no tag: its length rule is checked by the auth service so
// the message matches the login form.
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	Session     SessionDTO `json:"session"`
}

type SessionDTO struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Page      string    `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}
