package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "founder-net.backend/internal/domain/errors"
)

// Identity validation bounds
const (
	NameMinLength     = 3
	NameMaxLength     = 99
	PasswordMinLength = 4
	PasswordMaxLength = 40
)

var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// User represents a user entity. The entrepreneur/investor role flags are
// never stored on the row; they are derived from associations per request
// (see UserProfile).
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	IsAdmin      bool        `json:"isAdmin"`
	Bio          null.String `json:"bio,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    null.Time   `json:"-"`
}

// FollowableType implements Followable
func (u *User) FollowableType() FollowableType {
	return FollowableTypeUser
}

// FollowableID implements Followable
func (u *User) FollowableID() uuid.UUID {
	return u.ID
}

// UserProfile is a user together with its derived role flags and
// association counts, computed live from owned collections.
type UserProfile struct {
	User              *User `json:"user"`
	IsEntrepreneur    bool  `json:"isEntrepreneur"`
	IsInvestor        bool  `json:"isInvestor"`
	StartupCount      int64 `json:"startupCount"`
	MicroPostCount    int64 `json:"microPostCount"`
	FollowingUsers    int64 `json:"followingUsers"`
	FollowingStartups int64 `json:"followingStartups"`
	Followers         int64 `json:"followers"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
	Bio                  string `json:"bio,omitempty"`
}

// Validate checks the identity rules and returns the collected field
// failures, or nil when the input passes. Uniqueness is not checked here;
// the usecase layer owns it.
func (in *CreateUserInput) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	validateName(&v, in.Name)
	validateEmailFormat(&v, in.Email)
	validatePassword(&v, in.Password, in.PasswordConfirmation)
	if v.Any() {
		return &v
	}
	return nil
}

// UpdateProfileInput represents input for updating a user profile.
// Empty fields are left unchanged.
type UpdateProfileInput struct {
	Name                 string `json:"name,omitempty"`
	Email                string `json:"email,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
	Bio                  string `json:"bio,omitempty"`
}

// Validate checks the provided fields only
func (in *UpdateProfileInput) Validate() *domainerrors.ValidationErrors {
	var v domainerrors.ValidationErrors
	if in.Name != "" {
		validateName(&v, in.Name)
	}
	if in.Email != "" {
		validateEmailFormat(&v, in.Email)
	}
	if in.Password != "" || in.PasswordConfirmation != "" {
		validatePassword(&v, in.Password, in.PasswordConfirmation)
	}
	if v.Any() {
		return &v
	}
	return nil
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// NormalizeEmail lowercases and trims an email address. The same rewrite is
// applied by the persistence hook, so stored addresses are lowercase no
// matter which path wrote them.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(v *domainerrors.ValidationErrors, name string) {
	length := utf8.RuneCountInString(name)
	switch {
	case length == 0:
		v.Add("name", "can't be blank")
	case length < NameMinLength:
		v.Add("name", fmt.Sprintf("is too short (minimum is %d characters)", NameMinLength))
	case length > NameMaxLength:
		v.Add("name", fmt.Sprintf("is too long (maximum is %d characters)", NameMaxLength))
	}
}

func validateEmailFormat(v *domainerrors.ValidationErrors, email string) {
	if email == "" {
		v.Add("email", "can't be blank")
		return
	}
	if !emailPattern.MatchString(email) {
		v.Add("email", "is invalid")
	}
}

func validatePassword(v *domainerrors.ValidationErrors, password, confirmation string) {
	length := len(password)
	switch {
	case length == 0:
		v.Add("password", "can't be blank")
	case length < PasswordMinLength:
		v.Add("password", fmt.Sprintf("is too short (minimum is %d characters)", PasswordMinLength))
	case length > PasswordMaxLength:
		v.Add("password", fmt.Sprintf("is too long (maximum is %d characters)", PasswordMaxLength))
	}
	if password != confirmation {
		v.Add("passwordConfirmation", "doesn't match password")
	}
}
