package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AuthorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CommentableID   uuid.UUID `gorm:"type:uuid;not null;index:idx_commentable"`
	CommentableType string    `gorm:"type:varchar(20);not null;index:idx_commentable"`
	Body            string    `gorm:"type:varchar(500);not null"`
	CreatedAt       time.Time
}
