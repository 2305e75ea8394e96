package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A lost race on the email unique index surfaces
// as ErrAlreadyExists so callers treat it the same as a pre-checked duplicate.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		Bio:          user.Bio.String,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	// The model hook may have rewritten the email; reflect what was stored.
	user.Email = m.Email
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email. Lookup is case-insensitive: stored
// addresses are always lowercase, so normalizing the argument suffices.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", entities.NormalizeEmail(email)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update updates the mutable profile fields of a user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":       user.Name,
		"email":      entities.NormalizeEmail(user.Email),
		"updated_at": time.Now(),
	}
	if user.Bio.Valid {
		updates["bio"] = user.Bio.String
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with an optional search filter and pagination
func (r *UserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	countQuery := db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		searchTerm := "%" + search + "%"
		countQuery = countQuery.Where("name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	var users []*entities.User
	for _, m := range userModels {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return users, total, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	var deletedAt null.Time
	if m.DeletedAt.Valid {
		deletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		Bio:          null.NewString(m.Bio, m.Bio != ""),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
