package repository

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat message data operations
type ChatRepository interface {
	CreateWithNotification(ctx context.Context, msg *models.ChatMessage, notification *models.Notification) error
	ListBySwap(ctx context.Context, swapID uint, limit, offset int) ([]*models.ChatMessage, error)
	CountBySwap(ctx context.Context, swapID uint) (int64, error)
}

// chatRepository implements ChatRepository
type chatRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db, metrics: observability.NewDatabaseMetrics()}
}

// CreateWithNotification persists the message and the counterpart's
/// notification in one transaction: either both rows exist or neither does.
func (r *chatRepository) CreateWithNotification(ctx context.Context, msg *models.ChatMessage, notification *models.Notification) error {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "ChatMessage.CreateWithNotification", "chat_messages")
	defer span.End()
	defer r.metrics.TrackQuery("transaction", "chat_messages")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		if notification != nil {
			return tx.Create(notification).Error
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) ListBySwap(ctx context.Context, swapID uint, limit, offset int) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	tx := r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapID).
		Preload("Sender").
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	if err := tx.Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *chatRepository) CountBySwap(ctx context.Context, swapID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChatMessage{}).
		Where("swap_request_id = ?", swapID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
