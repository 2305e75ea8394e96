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

// StartupRepository implements startup data operations
type StartupRepository struct {
	db *gorm.DB
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(db *gorm.DB) *StartupRepository {
	return &StartupRepository{db: db}
}

// Create creates a new startup
func (r *StartupRepository) Create(ctx context.Context, startup *entities.Startup) error {
	m := &models.Startup{
		ID:        startup.ID,
		Name:      startup.Name,
		Pitch:     startup.Pitch.String,
		Website:   startup.Website.String,
		Tags:      startup.Tags,
		CreatedAt: startup.CreatedAt,
		UpdatedAt: startup.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a startup by ID
func (r *StartupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error) {
	var m models.Startup
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists startups with an optional search filter and pagination
func (r *StartupRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Startup, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	countQuery := db.WithContext(ctx).Model(&models.Startup{})
	if search != "" {
		countQuery = countQuery.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var startupModels []models.Startup
	if err := query.Find(&startupModels).Error; err != nil {
		return nil, 0, err
	}

	var startups []*entities.Startup
	for _, m := range startupModels {
		model := m
		startups = append(startups, r.toEntity(&model))
	}
	return startups, total, nil
}

// ListByFounder returns the startups a user founded, through the
// entrepreneurships join table
func (r *StartupRepository) ListByFounder(ctx context.Context, userID uuid.UUID) ([]*entities.Startup, error) {
	var startupModels []models.Startup
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Table("startups").
		Joins("JOIN entrepreneurships e ON e.startup_id = startups.id").
		Where("e.user_id = ? AND startups.deleted_at IS NULL", userID).
		Order("startups.created_at DESC").
		Find(&startupModels).Error
	if err != nil {
		return nil, err
	}

	var startups []*entities.Startup
	for _, m := range startupModels {
		model := m
		startups = append(startups, r.toEntity(&model))
	}
	return startups, nil
}

// CountByFounder counts the startups a user founded
func (r *StartupRepository) CountByFounder(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Entrepreneurship{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// AddEntrepreneurship links a user to a startup as founder or cofounder
func (r *StartupRepository) AddEntrepreneurship(ctx context.Context, e *entities.Entrepreneurship) error {
	m := &models.Entrepreneurship{
		ID:        e.ID,
		UserID:    e.UserID,
		StartupID: e.StartupID,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
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

func (r *StartupRepository) toEntity(m *models.Startup) *entities.Startup {
	var deletedAt null.Time
	if m.DeletedAt.Valid {
		deletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return &entities.Startup{
		ID:        m.ID,
		Name:      m.Name,
		Pitch:     null.NewString(m.Pitch, m.Pitch != ""),
		Website:   null.NewString(m.Website, m.Website != ""),
		Tags:      m.Tags,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
