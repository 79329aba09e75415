package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recommendation struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Url         string    `gorm:"type:text;not null"`
	Metadata    datatypes.JSONMap
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
