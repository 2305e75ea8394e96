package models

import (
	"time"

	"github.com/google/uuid"
)

type MicroPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:varchar(300);not null"`
	CreatedAt time.Time `gorm:"index"`
	User      *User     `gorm:"foreignKey:UserID"`
}

func (MicroPost) TableName() string {
	return "microposts"
}
