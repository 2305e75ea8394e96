package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a polymorphic edge from a user to a user or a startup. The
// composite unique index is the source of truth for idempotency: a second
// insert of the same edge fails the constraint no matter how it races.
type Follow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FollowerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge;index"`
	FollowedID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge;index"`
	FollowedType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_follow_edge"`
	CreatedAt    time.Time
}
