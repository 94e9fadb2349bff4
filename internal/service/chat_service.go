package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"github.com/microcosm-cc/bluemonday"
)

const maxMessageLength = 2000

// ChatService provides per-swap chat messaging with notification fan-out.
type ChatService struct {
	chatRepo  repository.ChatRepository
	swapRepo  repository.SwapRepository
	userRepo  repository.UserRepository
	sanitizer *bluemonday.Policy
}

// NewChatService returns a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, swapRepo repository.SwapRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{
		chatRepo:  chatRepo,
		swapRepo:  swapRepo,
		userRepo:  userRepo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// PostMessage stores a chat message on a swap and notifies the counterpart.
// The message and the notification are written in one transaction.
func (s *ChatService) PostMessage(ctx context.Context, swapID, senderID uint, text string) (*models.ChatMessage, error) {
	ctx, span := observability.GetTraceLayer().TraceServiceMethod(ctx, "ChatService", "PostMessage")
	defer span.End()

	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(senderID) {
		return nil, models.NewForbiddenError("Only swap participants can send messages")
	}

	clean := strings.TrimSpace(s.sanitizer.Sanitize(text))
	if clean == "" {
		return nil, models.NewValidationError("Message cannot be empty")
	}
	if utf8.RuneCountInString(clean) > maxMessageLength {
		return nil, models.NewValidationError(fmt.Sprintf("Message must not exceed %d characters", maxMessageLength))
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		SwapRequestID: swapID,
		SenderID:      senderID,
		Content:       clean,
	}
	notification := &models.Notification{
		UserID:  swap.Counterpart(senderID),
		Message: "New message from " + sender.Username,
		Link:    fmt.Sprintf("/chat/%d/", swapID),
	}

	if err := s.chatRepo.CreateWithNotification(ctx, msg, notification); err != nil {
		return nil, err
	}

	observability.ChatMessagesTotal.Inc()
	observability.NotificationFanoutTotal.Inc()
	middleware.Logger.InfoContext(ctx, "chat message posted",
		"swap_id", swapID,
		"sender_id", senderID,
	)

	msg.Sender = sender
	return msg, nil
}

// ListMessages returns a swap's messages in chronological order. Only
// participants may read the thread.
func (s *ChatService) ListMessages(ctx context.Context, swapID, userID uint) (*models.SwapRequest, []*models.ChatMessage, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, nil, err
	}
	if !swap.IsParticipant(userID) {
		return nil, nil, models.NewForbiddenError("Only swap participants can read messages")
	}

	messages, err := s.chatRepo.ListBySwap(ctx, swapID, 0, 0)
	if err != nil {
		return nil, nil, err
	}
	return swap, messages, nil
}
