package server

import (
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendSwapRequest handles POST /api/swap-requests/send/:skillId
func (s *Server) SendSwapRequest(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	swap, created, svcErr := s.swapService.Create(c.Context(), currentUserID(c), skillID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	status := fiber.StatusOK
	message := "Swap already requested"
	if created {
		status = fiber.StatusCreated
		message = "Swap request sent"
	}
	return c.Status(status).JSON(fiber.Map{
		"message":      message,
		"swap_request": swap,
	})
}

// GetIncomingSwapRequests handles GET /api/swap-requests/incoming
func (s *Server) GetIncomingSwapRequests(c *fiber.Ctx) error {
	swaps, err := s.swapService.ListIncoming(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap_requests": swaps})
}

// GetOutgoingSwapRequests handles GET /api/swap-requests/outgoing
func (s *Server) GetOutgoingSwapRequests(c *fiber.Ctx) error {
	swaps, err := s.swapService.ListOutgoing(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swap_requests": swaps})
}

// AcceptSwapRequest handles POST /api/swap-requests/:id/accept
func (s *Server) AcceptSwapRequest(c *fiber.Ctx) error {
	return s.transitionSwap(c, service.SwapActionAccept)
}

// DeclineSwapRequest handles POST /api/swap-requests/:id/decline
func (s *Server) DeclineSwapRequest(c *fiber.Ctx) error {
	return s.transitionSwap(c, service.SwapActionDecline)
}

func (s *Server) transitionSwap(c *fiber.Ctx, action service.SwapAction) error {
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, svcErr := s.swapService.Transition(c.Context(), swapID, currentUserID(c), action)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(fiber.Map{"swap_request": swap})
}

// DeleteSwapRequest handles DELETE /api/swap-requests/:id
func (s *Server) DeleteSwapRequest(c *fiber.Ctx) error {
	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.swapService.Delete(c.Context(), swapID, currentUserID(c)); svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Swap request deleted"})
}
