package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// NotificationService provides notification read-state business logic.
type NotificationService struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// ListAndMarkRead returns the user's notifications newest-first and marks
// every returned notification as read (read-on-view).
func (s *NotificationService) ListAndMarkRead(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifications, err := s.notifRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		if !n.IsRead {
			unread = append(unread, n.ID)
		}
	}
	if err := s.notifRepo.MarkRead(ctx, userID, unread); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkAllRead marks every unread notification for the user as read. It is
// idempotent: repeat calls are no-ops.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.UnreadCount(ctx, userID)
}
