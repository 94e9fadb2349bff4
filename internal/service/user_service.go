package service

import (
	"context"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	UserID         uint
	FullName       string
	Bio            string
	Location       string
	LookingToLearn string
	AvatarURL      string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Signup creates a user and their profile atomically.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	profile := &models.Profile{
		FullName: strings.TrimSpace(in.FullName),
	}
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// Login verifies credentials by username or email.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)

	var user *models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	return user, nil
}

// GetUserByID returns a user with profile and skills preloaded.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfileByUsername returns another member's profile for public viewing.
func (s *UserService) GetProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, user.ID)
}

// GetOwnProfile returns the caller's profile.
func (s *UserService) GetOwnProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies the non-empty fields of in to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.FullName != "" {
		profile.FullName = strings.TrimSpace(in.FullName)
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		profile.Bio = in.Bio
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.LookingToLearn != "" {
		profile.LookingToLearn = in.LookingToLearn
	}
	if in.AvatarURL != "" {
		profile.AvatarURL = in.AvatarURL
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, in.UserID)
	return profile, nil
}
