package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// ReviewService provides swap review business logic.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	swapRepo   repository.SwapRepository
}

// NewReviewService returns a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, swapRepo repository.SwapRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		swapRepo:   swapRepo,
	}
}

// AddReview records a rating for a swap. Only participants may review, each
// participant at most once per swap; the unique index backs the once-only
// rule under concurrent submissions.
func (s *ReviewService) AddReview(ctx context.Context, swapID, reviewerID uint, rating int, comment string) (*models.Review, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(reviewerID) {
		return nil, models.NewForbiddenError("Only swap participants can leave a review")
	}

	if err := validation.ValidateRating(rating); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	review := &models.Review{
		SwapRequestID: swapID,
		ReviewerID:    reviewerID,
		Rating:        rating,
		Comment:       strings.TrimSpace(comment),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByID(ctx, review.ID)
}

// ListForSwap returns the reviews on a single swap request.
func (s *ReviewService) ListForSwap(ctx context.Context, swapID uint) ([]models.Review, error) {
	return s.reviewRepo.ListForSwap(ctx, swapID)
}

// ListForUser returns reviews received by a user, newest first.
func (s *ReviewService) ListForUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListForUser(ctx, userID)
}

// ListGivenByUser returns reviews the user has written, newest first.
func (s *ReviewService) ListGivenByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListGivenByUser(ctx, userID)
}

// AverageRatingForUser returns the mean received rating and review count.
func (s *ReviewService) AverageRatingForUser(ctx context.Context, userID uint) (float64, int64, error) {
	return s.reviewRepo.AverageRatingForUser(ctx, userID)
}

// TopMembers returns the highest-rated members by average received rating.
func (s *ReviewService) TopMembers(ctx context.Context, limit int) ([]repository.RatedMember, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.reviewRepo.TopRatedMembers(ctx, limit)
}
