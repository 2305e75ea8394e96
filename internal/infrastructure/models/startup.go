package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Startup struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string         `gorm:"type:varchar(160);not null"`
	Pitch     string         `gorm:"type:text"`
	Website   string         `gorm:"type:varchar(255)"`
	Tags      pq.StringArray `gorm:"type:text[];default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Entrepreneurship struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_startup;index"`
	StartupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_startup"`
	Role      string    `gorm:"type:varchar(50);not null;default:'FOUNDER'"`
	CreatedAt time.Time
}
