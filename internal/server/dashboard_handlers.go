package server

import (
	"skillswap/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles GET /api/dashboard: a single summary payload for the
// signed-in member's landing view.
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	span, ctx := observability.NewSpan(c.UserContext(), "dashboard.aggregate")
	defer span.End()

	skills, err := s.skillService.ListOwn(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	unread, err := s.notifService.UnreadCount(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	incoming, err := s.swapService.ListIncoming(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	received, err := s.reviewService.ListForUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	given, err := s.reviewService.ListGivenByUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	avg, count, err := s.reviewService.AverageRatingForUser(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	topMembers, err := s.reviewService.TopMembers(ctx, 5)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"skills":            skills,
		"unread_count":      unread,
		"incoming_requests": incoming,
		"reviews_received":  received,
		"reviews_given":     given,
		"average_rating":    avg,
		"review_count":      count,
		"top_members":       topMembers,
	})
}
