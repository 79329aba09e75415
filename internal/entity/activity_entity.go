package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypeLesson ActivityType = "lesson"
	ActivityTypeBadge  ActivityType = "badge"
	ActivityTypeCourse ActivityType = "course"
)

// Activity is an append-only log entry created as a side effect of other
// mutations (profile update, goal completion).
type Activity struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	Type     ActivityType
	Title    string
	Time     time.Time
	IsRecent bool
}
