package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetOwnProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/profiles/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FullName       string `json:"full_name"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		LookingToLearn string `json:"looking_to_learn"`
		AvatarURL      string `json:"avatar_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:         currentUserID(c),
		FullName:       req.FullName,
		Bio:            req.Bio,
		Location:       req.Location,
		LookingToLearn: req.LookingToLearn,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUsername handles GET /api/profiles/:username
func (s *Server) GetProfileByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid username"))
	}

	profile, err := s.userService.GetProfileByUsername(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}

	reviews, err := s.reviewService.ListForUser(c.Context(), profile.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	avg, count, err := s.reviewService.AverageRatingForUser(c.Context(), profile.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile":        profile,
		"reviews":        reviews,
		"average_rating": avg,
		"review_count":   count,
	})
}
