package server

import (
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetChatMessages handles GET /api/chat/:id
func (s *Server) GetChatMessages(c *fiber.Ctx) error {
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, messages, svcErr := s.chatService.ListMessages(c.Context(), swapID, currentUserID(c))
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	total, svcErr := s.chatRepo.CountBySwap(c.Context(), swapID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"swap_request":  swap,
		"messages":      messages,
		"message_count": total,
	})
}

// PostChatMessage handles POST /api/chat/:id
func (s *Server) PostChatMessage(c *fiber.Ctx) error {
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	msg, svcErr := s.chatService.PostMessage(c.Context(), swapID, currentUserID(c), req.Content)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
