package entities

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// StartupNameMaxLength bounds startup names
const StartupNameMaxLength = 160

// EntrepreneurRole values for entrepreneurship rows
const (
	EntrepreneurRoleFounder   = "FOUNDER"
	EntrepreneurRoleCofounder = "COFOUNDER"
)

// Startup represents a startup entity. Users own startups through
// entrepreneurship rows rather than a direct foreign key.
type Startup struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Pitch     null.String `json:"pitch,omitempty"`
	Website   null.String `json:"website,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	DeletedAt null.Time   `json:"-"`
}

// FollowableType implements Followable
func (s *Startup) FollowableType() FollowableType {
	return FollowableTypeStartup
}

// FollowableID implements Followable
func (s *Startup) FollowableID() uuid.UUID {
	return s.ID
}

// CommentableType implements Commentable
func (s *Startup) CommentableType() CommentableType {
	return CommentableTypeStartup
}

// CommentableID implements Commentable
func (s *Startup) CommentableID() uuid.UUID {
	return s.ID
}

// Entrepreneurship links a founding user to a startup. One row per
// (user, startup) pair.
type Entrepreneurship struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	StartupID uuid.UUID `json:"startupId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateStartupInput represents input for creating a startup
type CreateStartupInput struct {
	Name    string   `json:"name"`
	Pitch   string   `json:"pitch,omitempty"`
	Website string   `json:"website,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Validate checks startup creation input
func (in *CreateStartupInput) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	length := utf8.RuneCountInString(in.Name)
	switch {
	case length == 0:
		v.Add("name", "can't be blank")
	case length > StartupNameMaxLength:
		v.Add("name", fmt.Sprintf("is too long (maximum is %d characters)", StartupNameMaxLength))
	}
	if v.Any() {
		return &v
	}
	return nil
}
