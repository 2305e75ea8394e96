package models

import (
	"time"

	"github.com/google/uuid"
)

type Investor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirmName     string    `gorm:"type:varchar(160)"`
	AccreditedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
