package entities

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// MicroPostMaxLength bounds micro-post content
const MicroPostMaxLength = 300

// MicroPost represents a short post authored by a user. Listings and the
// feed always order by creation time descending.
type MicroPost struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// Author is populated on feed reads
	Author *User `json:"author,omitempty"`
}

// CommentableType implements Commentable
func (m *MicroPost) CommentableType() CommentableType {
	return CommentableTypeMicroPost
}

// CommentableID implements Commentable
func (m *MicroPost) CommentableID() uuid.UUID {
	return m.ID
}

// CreateMicroPostInput represents input for posting
type CreateMicroPostInput struct {
	Content string `json:"content"`
}

// Validate checks post content
func (in *CreateMicroPostInput) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	length := utf8.RuneCountInString(in.Content)
	switch {
	case length == 0:
		v.Add("content", "can't be blank")
	case length > MicroPostMaxLength:
		v.Add("content", fmt.Sprintf("is too long (maximum is %d characters)", MicroPostMaxLength))
	}
	if v.Any() {
		return &v
	}
	return nil
}
