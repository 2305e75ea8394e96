package entities

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// CommentBodyMaxLength bounds comment bodies
const CommentBodyMaxLength = 500

// CommentableType discriminates the entity kinds that accept comments
type CommentableType string

const (
	CommentableTypeStartup   CommentableType = "STARTUP"
	CommentableTypeMicroPost CommentableType = "MICROPOST"
)

// Valid reports whether the type is a known comment target kind
func (t CommentableType) Valid() bool {
	return t == CommentableTypeStartup || t == CommentableTypeMicroPost
}

// Commentable marks an entity type as a valid comment target
type Commentable interface {
	CommentableType() CommentableType
	CommentableID() uuid.UUID
}

// Comment represents a comment attached to a commentable entity
type Comment struct {
	ID              uuid.UUID       `json:"id"`
	AuthorID        uuid.UUID       `json:"authorId"`
	CommentableID   uuid.UUID       `json:"commentableId"`
	CommentableType CommentableType `json:"commentableType"`
	Body            string          `json:"body"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CommentTarget identifies a comment target by discriminant and id
type CommentTarget struct {
	Type CommentableType `json:"type"`
	ID   uuid.UUID       `json:"id"`
}

// Validate rejects unknown discriminants and missing ids
func (t CommentTarget) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	if !t.Type.Valid() {
		v.Add("type", "is not a commentable entity type")
	}
	if t.ID == uuid.Nil {
		v.Add("id", "can't be blank")
	}
	if v.Any() {
		return &v
	}
	return nil
}

// AddCommentInput represents input for commenting on a target
type AddCommentInput struct {
	Target CommentTarget `json:"target"`
	Body   string        `json:"body"`
}

// Validate checks comment input including the target discriminant
func (in *AddCommentInput) Validate() *domainerrors.ValidationErrors {
	v := in.Target.Validate()
	if v == nil {
		v = &domainerrors.ValidationErrors{}
	}
	length := utf8.RuneCountInString(in.Body)
	switch {
	case length == 0:
		v.Add("body", "can't be blank")
	case length > CommentBodyMaxLength:
		v.Add("body", fmt.Sprintf("is too long (maximum is %d characters)", CommentBodyMaxLength))
	}
	if v.Any() {
		return v
	}
	return nil
}
