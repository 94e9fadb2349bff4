package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListForSwap(ctx context.Context, swapID uint) ([]models.Review, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Review, error)
	ListGivenByUser(ctx context.Context, userID uint) ([]models.Review, error)
	AverageRatingForUser(ctx context.Context, userID uint) (float64, int64, error)
	TopRatedMembers(ctx context.Context, limit int) ([]RatedMember, error)
}

// RatedMember is one leaderboard row: a user together with the aggregate of
// the reviews written about them.
type RatedMember struct {
	UserID        uint    `json:"user_id"`
	Username      string  `json:"username"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// reviewRepository implements ReviewRepository
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review. The unique index on (swap_request, reviewer)
// allows at most one review per reviewer per swap, even under concurrent
// submissions.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if models.IsDuplicateKeyError(err) {
			return models.NewConflictError("review already submitted for this swap")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("Reviewer").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListForSwap(ctx context.Context, swapID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapID).
		Preload("Reviewer").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

// ListForUser returns reviews written about a user: reviews on the user's
// swaps where someone else was the reviewer.
func (r *reviewRepository) ListForUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Joins("JOIN swap_requests sr ON sr.id = reviews.swap_request_id").
		Where("(sr.from_user_id = ? OR sr.to_user_id = ?) AND reviews.reviewer_id != ?", userID, userID, userID).
		Preload("Reviewer").
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

// ListGivenByUser returns the reviews a user has written, newest first.
func (r *reviewRepository) ListGivenByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("reviewer_id = ?", userID).
		Preload("Reviewer").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRatingForUser(ctx context.Context, userID uint) (float64, int64, error) {
	type aggregate struct {
		Avg   float64
		Count int64
	}
	var agg aggregate
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Joins("JOIN swap_requests sr ON sr.id = reviews.swap_request_id").
		Where("(sr.from_user_id = ? OR sr.to_user_id = ?) AND reviews.reviewer_id != ?", userID, userID, userID).
		Scan(&agg).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return agg.Avg, agg.Count, nil
}

// TopRatedMembers ranks users by the average rating of reviews written about
// them. The subject of a review is the swap participant who is not the
// reviewer.
func (r *reviewRepository) TopRatedMembers(ctx context.Context, limit int) ([]RatedMember, error) {
	var members []RatedMember
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("u.id as user_id, u.username as username, AVG(reviews.rating) as average_rating, COUNT(*) as review_count").
		Joins("JOIN swap_requests sr ON sr.id = reviews.swap_request_id").
		Joins("JOIN users u ON u.id = CASE WHEN reviews.reviewer_id = sr.from_user_id THEN sr.to_user_id ELSE sr.from_user_id END").
		Group("u.id, u.username").
		Order("average_rating DESC, review_count DESC").
		Limit(limit).
		Scan(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}
