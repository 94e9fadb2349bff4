package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"
	"skillswap/internal/observability"

	"gorm.io/gorm"
)

// SwapRepository defines the interface for swap request data operations
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	FindByTuple(ctx context.Context, fromUserID, toUserID, offeredSkillID, requestedSkillID uint) (*models.SwapRequest, error)
	UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error
	Delete(ctx context.Context, swapID uint) error
	ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error)
	ListOutgoing(ctx context.Context, userID uint) ([]models.SwapRequest, error)
	ListForUser(ctx context.Context, userID uint) ([]models.SwapRequest, error)
}

// swapRepository implements SwapRepository
type swapRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewSwapRepository creates a new swap request repository
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db, metrics: observability.NewDatabaseMetrics()}
}

var swapPreloads = []string{"FromUser", "ToUser", "OfferedSkill", "RequestedSkill"}

func (r *swapRepository) withPreloads(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range swapPreloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts the swap request. The unique index on the
// (from_user, to_user, offered_skill, requested_skill) tuple guarantees only
// one request per tuple even under concurrent inserts; a duplicate surfaces
// as a conflict error.
func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "SwapRequest.Create", "swap_requests")
	defer span.End()
	defer r.metrics.TrackQuery("create", "swap_requests")()

	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		span.RecordError(err)
		if models.IsDuplicateKeyError(err) {
			return models.NewConflictError("swap request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, "SwapRequest.GetByID", "swap_requests")
	defer span.End()
	defer r.metrics.TrackQuery("select", "swap_requests")()

	var swap models.SwapRequest
	if err := r.withPreloads(ctx).First(&swap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("SwapRequest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) FindByTuple(ctx context.Context, fromUserID, toUserID, offeredSkillID, requestedSkillID uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.withPreloads(ctx).
		Where("from_user_id = ? AND to_user_id = ? AND offered_skill_id = ? AND requested_skill_id = ?",
			fromUserID, toUserID, offeredSkillID, requestedSkillID).
		First(&swap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No request exists for this tuple
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", swapID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the swap request together with its chat messages and
// reviews in one transaction, so a deleted swap leaves no orphaned rows
// regardless of whether the engine enforces the FK cascade.
func (r *swapRepository) Delete(ctx context.Context, swapID uint) error {
	defer r.metrics.TrackQuery("transaction", "swap_requests")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("swap_request_id = ?", swapID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("swap_request_id = ?", swapID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SwapRequest{}, swapID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.withPreloads(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

func (r *swapRepository) ListOutgoing(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.withPreloads(ctx).
		Where("from_user_id = ?", userID).
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

func (r *swapRepository) ListForUser(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.withPreloads(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}
