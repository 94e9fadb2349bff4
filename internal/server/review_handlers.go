package server

import (
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AddReview handles POST /api/reviews/add/:id
func (s *Server) AddReview(c *fiber.Ctx) error {
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Rating  int    `json:"rating" validate:"required"`
		Comment string `json:"comment" validate:"max=1000"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	review, svcErr := s.reviewService.AddReview(c.Context(), swapID, currentUserID(c), req.Rating, req.Comment)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetMyReviews handles GET /api/reviews
func (s *Server) GetMyReviews(c *fiber.Ctx) error {
	reviews, err := s.reviewService.ListForUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}
