// Package service contains business logic implementations.
package service

import (
	"context"
	"errors"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// SwapAction is a lifecycle transition requested on a swap.
type SwapAction string

const (
	SwapActionAccept  SwapAction = "accept"
	SwapActionDecline SwapAction = "decline"
)

// SwapService provides swap request lifecycle business logic.
type SwapService struct {
	swapRepo  repository.SwapRepository
	skillRepo repository.SkillRepository
}

// NewSwapService returns a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, skillRepo repository.SkillRepository) *SwapService {
	return &SwapService{
		swapRepo:  swapRepo,
		skillRepo: skillRepo,
	}
}

// Create sends a swap request for the given skill. The offered skill is the
// requester's first teachable skill. Creation is idempotent per
// (from, to, offered, requested) tuple: if a request already exists the
// existing record is returned with created=false.
func (s *SwapService) Create(ctx context.Context, fromUserID, requestedSkillID uint) (*models.SwapRequest, bool, error) {
	requested, err := s.skillRepo.GetByID(ctx, requestedSkillID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return nil, false, models.NewValidationError("Requested skill does not exist")
		}
		return nil, false, err
	}

	owner, err := s.skillRepo.OwnerUserID(ctx, requested.ID)
	if err != nil {
		return nil, false, err
	}
	if owner == fromUserID {
		return nil, false, models.NewValidationError("Cannot request a swap for your own skill")
	}

	teachable, err := s.skillRepo.ListTeachableByUser(ctx, fromUserID)
	if err != nil {
		return nil, false, err
	}
	if len(teachable) == 0 {
		return nil, false, models.NewValidationError("Add a skill you can teach before requesting a swap")
	}
	offered := teachable[0]

	existing, err := s.swapRepo.FindByTuple(ctx, fromUserID, owner, offered.ID, requested.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	swap := &models.SwapRequest{
		FromUserID:       fromUserID,
		ToUserID:         owner,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Status:           models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		// A concurrent duplicate hit the unique index between the pre-check
		// and the insert; resolve to the same idempotent outcome.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "CONFLICT" {
			winner, findErr := s.swapRepo.FindByTuple(ctx, fromUserID, owner, offered.ID, requested.ID)
			if findErr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}

	observability.SwapRequestsTotal.WithLabelValues("created").Inc()

	created, err := s.swapRepo.GetByID(ctx, swap.ID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Transition applies an accept or decline to a swap request. Only the
// receiving participant may transition; there is no guard on the current
// status, so the last write wins.
func (s *SwapService) Transition(ctx context.Context, requestID, actorID uint, action SwapAction) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if swap.ToUserID != actorID {
		return nil, models.NewForbiddenError("Only the recipient can accept or decline a swap request")
	}

	var status models.SwapStatus
	switch action {
	case SwapActionAccept:
		status = models.SwapStatusAccepted
	case SwapActionDecline:
		status = models.SwapStatusDeclined
	default:
		return nil, models.NewValidationError("Unknown action")
	}

	if err := s.swapRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	observability.SwapRequestsTotal.WithLabelValues(string(status)).Inc()

	return s.swapRepo.GetByID(ctx, requestID)
}

// Delete removes a swap request along with its messages and reviews.
func (s *SwapService) Delete(ctx context.Context, requestID, actorID uint) error {
	swap, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if !swap.IsParticipant(actorID) {
		return models.NewForbiddenError("Only a participant can delete a swap request")
	}

	if err := s.swapRepo.Delete(ctx, requestID); err != nil {
		return err
	}
	observability.SwapRequestsTotal.WithLabelValues("deleted").Inc()
	return nil
}

// ListIncoming returns swap requests addressed to the user, newest first.
func (s *SwapService) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.swapRepo.ListIncoming(ctx, userID)
}

// ListOutgoing returns swap requests sent by the user, newest first.
func (s *SwapService) ListOutgoing(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.swapRepo.ListOutgoing(ctx, userID)
}

// GetForParticipant fetches a swap request and verifies the user is one of
// its two participants.
func (s *SwapService) GetForParticipant(ctx context.Context, requestID, userID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(userID) {
		return nil, models.NewForbiddenError("You are not a participant in this swap")
	}
	return swap, nil
}
