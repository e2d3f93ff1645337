package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the tab-lifetime record of who is logged in.
type Session struct {
	Id        uuid.UUID
	Username  string
	Page      Page
	CreatedAt time.Time
}
