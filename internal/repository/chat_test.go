package repository

import (
	"context"
	"fmt"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_Integration(t *testing.T) {
	repo := NewChatRepository(testDB)
	swapRepo := NewSwapRepository(testDB)
	notifRepo := NewNotificationRepository(testDB)
	ctx := context.Background()

	u1, s1 := seedUser(t, "ch1")
	u2, s2 := seedUser(t, "ch2")

	swap := &models.SwapRequest{
		FromUserID:       u1.ID,
		ToUserID:         u2.ID,
		OfferedSkillID:   s1.ID,
		RequestedSkillID: s2.ID,
		Status:           models.SwapStatusAccepted,
	}
	require.NoError(t, swapRepo.Create(ctx, swap))

	t.Run("CreateWithNotification persists both rows", func(t *testing.T) {
		msg := &models.ChatMessage{
			SwapRequestID: swap.ID,
			SenderID:      u1.ID,
			Content:       "hello there",
		}
		notification := &models.Notification{
			UserID:  u2.ID,
			Message: "New message from " + u1.Username,
			Link:    fmt.Sprintf("/chat/%d/", swap.ID),
		}

		err := repo.CreateWithNotification(ctx, msg, notification)
		require.NoError(t, err)

		messages, err := repo.ListBySwap(ctx, swap.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "hello there", messages[0].Content)
		assert.Equal(t, u1.Username, messages[0].Sender.Username)

		count, err := notifRepo.UnreadCount(ctx, u2.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ListBySwap is chronological", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			msg := &models.ChatMessage{
				SwapRequestID: swap.ID,
				SenderID:      u2.ID,
				Content:       fmt.Sprintf("reply %d", i),
			}
			require.NoError(t, repo.CreateWithNotification(ctx, msg, nil))
		}

		messages, err := repo.ListBySwap(ctx, swap.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, messages, 4)
		assert.Equal(t, "hello there", messages[0].Content)
		assert.Equal(t, "reply 2", messages[3].Content)
	})

	t.Run("CountBySwap", func(t *testing.T) {
		count, err := repo.CountBySwap(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})
}
