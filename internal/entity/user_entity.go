package entity

import (
	"time"

	"github.com/google/uuid"
)

type ThinkingStyle string

const (
	ThinkingStylePlan    ThinkingStyle = "Plan"
	ThinkingStyleExplore ThinkingStyle = "Explore"
	ThinkingStyleCreate  ThinkingStyle = "Create"
	ThinkingStyleAnalyze ThinkingStyle = "Analyze"
)

type User struct {
	Id       uuid.UUID
	Username string
	// Plaintext equality is the whole auth surface here; no hashing layer.
	Password      string
	Name          *string
	Email         *string
	Avatar        *string
	Subjects      []string
	Interests     string
	Skills        string
	Goal          string
	ThinkingStyle string
	ExtraInfo     string
	Level         int
	Progress      int
	StreakDays    int
	LastLoginDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasProfile reports whether the user completed the profile survey.
func (u *User) HasProfile() bool {
	return len(u.Subjects) > 0 && u.Interests != ""
}

// PrimarySubject returns the first survey subject, or a generic default.
func (u *User) PrimarySubject() string {
	if len(u.Subjects) > 0 {
		return u.Subjects[0]
	}
	return "Career Development"
}
