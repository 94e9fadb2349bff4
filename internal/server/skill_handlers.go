package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AddSkill handles POST /api/skills
func (s *Server) AddSkill(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name" validate:"required,min=2,max=80"`
		Category    string `json:"category" validate:"max=80"`
		CanTeach    bool   `json:"can_teach"`
		WantToLearn bool   `json:"want_to_learn"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	skill, err := s.skillService.AddSkill(c.Context(), service.AddSkillInput{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Category:    req.Category,
		CanTeach:    req.CanTeach,
		WantToLearn: req.WantToLearn,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// GetMySkills handles GET /api/skills/mine
func (s *Server) GetMySkills(c *fiber.Ctx) error {
	skills, err := s.skillService.ListOwn(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

// SearchSkills handles GET /api/skills/search?q=
func (s *Server) SearchSkills(c *fiber.Ctx) error {
	listings, err := s.skillService.Search(c.Context(), currentUserID(c), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"results": listings})
}

// DeleteSkill handles DELETE /api/skills/:id
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.skillService.DeleteSkill(c.Context(), skillID, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
