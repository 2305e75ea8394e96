package entities

import (
	"time"

	"github.com/google/uuid"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// FollowableType discriminates the entity kinds a follow edge may point at.
// Exactly one type is recorded per edge row.
type FollowableType string

const (
	FollowableTypeUser    FollowableType = "USER"
	FollowableTypeStartup FollowableType = "STARTUP"
)

// Valid reports whether the type is a known follow target kind
func (t FollowableType) Valid() bool {
	return t == FollowableTypeUser || t == FollowableTypeStartup
}

// Followable marks an entity type as a valid follow target
type Followable interface {
	FollowableType() FollowableType
	FollowableID() uuid.UUID
}

// Follow represents a directional follow edge from a user to a followable
// entity. Uniqueness of (follower, followed, type) is guaranteed by the
// storage layer, not by application locking.
type Follow struct {
	ID           uuid.UUID      `json:"id"`
	FollowerID   uuid.UUID      `json:"followerId"`
	FollowedID   uuid.UUID      `json:"followedId"`
	FollowedType FollowableType `json:"followedType"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FollowTarget identifies a follow target by discriminant and id
type FollowTarget struct {
	Type FollowableType `json:"type"`
	ID   uuid.UUID      `json:"id"`
}

// TargetOf builds a FollowTarget from any followable entity
func TargetOf(f Followable) FollowTarget {
	return FollowTarget{Type: f.FollowableType(), ID: f.FollowableID()}
}

// Validate rejects unknown discriminants and missing ids
func (t FollowTarget) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	if !t.Type.Valid() {
		v.Add("type", "is not a followable entity type")
	}
	if t.ID == uuid.Nil {
		v.Add("id", "can't be blank")
	}
	if v.Any() {
		return &v
	}
	return nil
}
