package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill data operations
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	ListByProfile(ctx context.Context, profileID uint) ([]models.Skill, error)
	ListTeachableByUser(ctx context.Context, userID uint) ([]models.Skill, error)
	OwnerUserID(ctx context.Context, skillID uint) (uint, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

// skillRepository implements SkillRepository
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) ListByProfile(ctx context.Context, profileID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("name ASC").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// ListTeachableByUser returns the skills a user can teach, used when picking
// the offered skill for an outgoing swap request.
func (r *skillRepository) ListTeachableByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = skills.profile_id").
		Where("profiles.user_id = ? AND skills.can_teach = ?", userID, true).
		Order("skills.id ASC").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// OwnerUserID resolves the user who owns a skill through its profile.
func (r *skillRepository) OwnerUserID(ctx context.Context, skillID uint) (uint, error) {
	var userID uint
	err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Select("profiles.user_id").
		Joins("JOIN profiles ON profiles.id = skills.profile_id").
		Where("skills.id = ?", skillID).
		Scan(&userID).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	if userID == 0 {
		return 0, models.NewNotFoundError("Skill", skillID)
	}
	return userID, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Skill{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
