package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password      string    `gorm:"type:varchar(255);not null"`
	Name          *string   `gorm:"type:varchar(255)"`
	Email         *string   `gorm:"type:varchar(255)"`
	Avatar        *string   `gorm:"type:text"`
	Subjects      datatypes.JSON
	Interests     string `gorm:"type:text"`
	Skills        string `gorm:"type:text"`
	Goal          string `gorm:"type:text"`
	ThinkingStyle string `gorm:"type:varchar(50);column:thinking_style"`
	ExtraInfo     string `gorm:"type:text"`
	Level         int    `gorm:"default:1"`
	Progress      int    `gorm:"default:0"`
	StreakDays    int    `gorm:"default:0"`
	LastLoginDate *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
