package service

import (
	"context"
	"reflect"
	"testing"

	"skillswap/internal/models"
)

func TestNotificationServiceListAndMarkRead(t *testing.T) {
	var markedUser uint
	var markedIDs []uint

	notifs := noopNotifRepo()
	notifs.listForUserFn = func(context.Context, uint) ([]models.Notification, error) {
		return []models.Notification{
			{ID: 3, UserID: 1, Message: "New message from bob", IsRead: false},
			{ID: 2, UserID: 1, Message: "New message from carol", IsRead: true},
			{ID: 1, UserID: 1, Message: "New message from bob", IsRead: false},
		}, nil
	}
	notifs.markReadFn = func(_ context.Context, userID uint, ids []uint) error {
		markedUser = userID
		markedIDs = ids
		return nil
	}

	svc := NewNotificationService(notifs)
	got, err := svc.ListAndMarkRead(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all notifications returned, got %d", len(got))
	}
	if markedUser != 1 {
		t.Fatalf("expected mark-read scoped to user 1, got %d", markedUser)
	}
	if !reflect.DeepEqual(markedIDs, []uint{3, 1}) {
		t.Fatalf("expected only unread ids marked, got %v", markedIDs)
	}
}

func TestNotificationServiceMarkAllRead(t *testing.T) {
	calls := 0
	notifs := noopNotifRepo()
	notifs.markAllReadFn = func(_ context.Context, userID uint) error {
		calls++
		if userID != 4 {
			t.Fatalf("expected user 4, got %d", userID)
		}
		return nil
	}

	svc := NewNotificationService(notifs)
	if err := svc.MarkAllRead(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Idempotent: a second call is just another no-op bulk update.
	if err := svc.MarkAllRead(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 repo calls, got %d", calls)
	}
}

func TestNotificationServiceUnreadCount(t *testing.T) {
	notifs := noopNotifRepo()
	notifs.unreadCountFn = func(context.Context, uint) (int64, error) { return 7, nil }

	svc := NewNotificationService(notifs)
	count, err := svc.UnreadCount(context.Background(), 1)
	if err != nil || count != 7 {
		t.Fatalf("expected 7, got %d err=%v", count, err)
	}
}
