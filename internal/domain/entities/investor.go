package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Investor represents the one-to-one investor record of a user
type Investor struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	FirmName     null.String `json:"firmName,omitempty"`
	AccreditedAt null.Time   `json:"accreditedAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInvestorInput represents input for registering as an investor
type RegisterInvestorInput struct {
	FirmName string `json:"firmName,omitempty"`
}
