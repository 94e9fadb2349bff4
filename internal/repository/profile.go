package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Search(ctx context.Context, query string) ([]models.Profile, error)
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skills").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Search finds profiles whose username, full name, or skills match the query.
func (r *profileRepository) Search(ctx context.Context, query string) ([]models.Profile, error) {
	var profiles []models.Profile
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = profiles.user_id").
		Joins("LEFT JOIN skills ON skills.profile_id = profiles.id").
		Where("users.username LIKE ? OR profiles.full_name LIKE ? OR skills.name LIKE ?", pattern, pattern, pattern).
		Group("profiles.id").
		Preload("User").
		Preload("Skills").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
