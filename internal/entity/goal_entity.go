package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a short, actionable career development task. Goals are removed
// from storage once completed; only the completion activity survives.
type Goal struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Completed bool
	Progress  int // 0-100
	CreatedAt time.Time
	UpdatedAt time.Time
}
