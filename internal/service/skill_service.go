package service

import (
	"context"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// SkillService provides skill management and browsing business logic.
type SkillService struct {
	skillRepo   repository.SkillRepository
	profileRepo repository.ProfileRepository
}

// AddSkillInput carries the fields for a new skill.
type AddSkillInput struct {
	UserID      uint
	Name        string
	Category    string
	CanTeach    bool
	WantToLearn bool
}

// SkillListing is a browsable skill with its owner attached.
type SkillListing struct {
	Skill    models.Skill `json:"skill"`
	Username string       `json:"username"`
	FullName string       `json:"full_name"`
}

// NewSkillService returns a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository, profileRepo repository.ProfileRepository) *SkillService {
	return &SkillService{
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
	}
}

// AddSkill attaches a new skill to the user's profile.
func (s *SkillService) AddSkill(ctx context.Context, in AddSkillInput) (*models.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Skill name is required")
	}
	if !in.CanTeach && !in.WantToLearn {
		return nil, models.NewValidationError("Skill must be teachable or wanted")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	skill := &models.Skill{
		ProfileID:   profile.ID,
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		CanTeach:    in.CanTeach,
		WantToLearn: in.WantToLearn,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	cache.InvalidateSkillSearches(ctx)
	return skill, nil
}

// ListOwn returns the caller's skills.
func (s *SkillService) ListOwn(ctx context.Context, userID uint) ([]models.Skill, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.skillRepo.ListByProfile(ctx, profile.ID)
}

// DeleteSkill removes a skill. Only the owner may delete it.
func (s *SkillService) DeleteSkill(ctx context.Context, skillID, userID uint) error {
	owner, err := s.skillRepo.OwnerUserID(ctx, skillID)
	if err != nil {
		return err
	}
	if owner != userID {
		return models.NewForbiddenError("You can only delete your own skills")
	}

	if err := s.skillRepo.Delete(ctx, skillID); err != nil {
		return err
	}

	cache.InvalidateSkillSearches(ctx)
	return nil
}

// Search browses other members' skills by name substring, excluding the
// caller's own. Unfiltered browses are served cache-aside from Redis.
func (s *SkillService) Search(ctx context.Context, userID uint, query string) ([]SkillListing, error) {
	query = strings.TrimSpace(query)

	var profiles []models.Profile
	if query == "" {
		err := cache.Aside(ctx, cache.SkillSearchKey("all"), &profiles, cache.SkillSearchTTL, func() (any, error) {
			result, err := s.profileRepo.Search(ctx, "")
			if err != nil {
				return nil, err
			}
			return result, nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		profiles, err = s.profileRepo.Search(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	loweredQuery := strings.ToLower(query)
	listings := make([]SkillListing, 0)
	for _, p := range profiles {
		if p.UserID == userID {
			continue
		}
		username := ""
		if p.User != nil {
			username = p.User.Username
		}
		for _, skill := range p.Skills {
			if query != "" && !strings.Contains(strings.ToLower(skill.Name), loweredQuery) {
				continue
			}
			listings = append(listings, SkillListing{
				Skill:    skill,
				Username: username,
				FullName: p.FullName,
			})
		}
	}
	return listings, nil
}
