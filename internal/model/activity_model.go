package model

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type     string    `gorm:"type:varchar(50);not null"`
	Title    string    `gorm:"type:text;not null"`
	Time     time.Time `gorm:"autoCreateTime"`
	IsRecent bool      `gorm:"default:true"`
}

func (Activity) TableName() string {
	return "activities"
}
