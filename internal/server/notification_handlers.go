package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications. Returned notifications are
// marked read as a side effect (read-on-view).
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.notifService.ListAndMarkRead(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	count, err := s.notifService.UnreadCount(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"unread_count": count})
}

// MarkNotificationsRead handles POST /api/notifications/mark-read
func (s *Server) MarkNotificationsRead(c *fiber.Ctx) error {
	if err := s.notifService.MarkAllRead(c.Context(), currentUserID(c)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// MarkReadMethodNotAllowed rejects non-POST requests to the mark-read path.
func (s *Server) MarkReadMethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": "Invalid request",
	})
}
