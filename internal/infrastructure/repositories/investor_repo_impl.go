package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/infrastructure/models"
)

// InvestorRepository implements investor data operations
type InvestorRepository struct {
	db *gorm.DB
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db *gorm.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

// Create creates an investor record. The unique index on user_id keeps the
// relation one-to-one; a second insert maps to ErrAlreadyExists.
func (r *InvestorRepository) Create(ctx context.Context, investor *entities.Investor) error {
	m := &models.Investor{
		ID:        investor.ID,
		UserID:    investor.UserID,
		FirmName:  investor.FirmName.String,
		CreatedAt: investor.CreatedAt,
		UpdatedAt: investor.UpdatedAt,
	}
	if investor.AccreditedAt.Valid {
		t := investor.AccreditedAt.Time
		m.AccreditedAt = &t
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserID gets the investor record of a user
func (r *InvestorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Investor, error) {
	var m models.Investor
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ExistsForUser reports whether the user has an investor record
func (r *InvestorRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Investor{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InvestorRepository) toEntity(m *models.Investor) *entities.Investor {
	return &entities.Investor{
		ID:           m.ID,
		UserID:       m.UserID,
		FirmName:     null.NewString(m.FirmName, m.FirmName != ""),
		AccreditedAt: null.TimeFromPtr(m.AccreditedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
