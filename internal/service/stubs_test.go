package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

type swapRepoStub struct {
	createFn       func(context.Context, *models.SwapRequest) error
	getByIDFn      func(context.Context, uint) (*models.SwapRequest, error)
	findByTupleFn  func(context.Context, uint, uint, uint, uint) (*models.SwapRequest, error)
	updateStatusFn func(context.Context, uint, models.SwapStatus) error
	deleteFn       func(context.Context, uint) error
	listIncomingFn func(context.Context, uint) ([]models.SwapRequest, error)
	listOutgoingFn func(context.Context, uint) ([]models.SwapRequest, error)
	listForUserFn  func(context.Context, uint) ([]models.SwapRequest, error)
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) FindByTuple(ctx context.Context, from, to, offered, requested uint) (*models.SwapRequest, error) {
	return s.findByTupleFn(ctx, from, to, offered, requested)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, id uint, status models.SwapStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *swapRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *swapRepoStub) ListIncoming(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.listIncomingFn(ctx, userID)
}
func (s *swapRepoStub) ListOutgoing(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.listOutgoingFn(ctx, userID)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.listForUserFn(ctx, userID)
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn:  func(context.Context, *models.SwapRequest) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) { return &models.SwapRequest{}, nil },
		findByTupleFn: func(context.Context, uint, uint, uint, uint) (*models.SwapRequest, error) {
			return nil, nil
		},
		updateStatusFn: func(context.Context, uint, models.SwapStatus) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
		listIncomingFn: func(context.Context, uint) ([]models.SwapRequest, error) { return nil, nil },
		listOutgoingFn: func(context.Context, uint) ([]models.SwapRequest, error) { return nil, nil },
		listForUserFn:  func(context.Context, uint) ([]models.SwapRequest, error) { return nil, nil },
	}
}

type skillRepoStub struct {
	createFn              func(context.Context, *models.Skill) error
	getByIDFn             func(context.Context, uint) (*models.Skill, error)
	listByProfileFn       func(context.Context, uint) ([]models.Skill, error)
	listTeachableByUserFn func(context.Context, uint) ([]models.Skill, error)
	ownerUserIDFn         func(context.Context, uint) (uint, error)
	updateFn              func(context.Context, *models.Skill) error
	deleteFn              func(context.Context, uint) error
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) ListByProfile(ctx context.Context, profileID uint) ([]models.Skill, error) {
	return s.listByProfileFn(ctx, profileID)
}
func (s *skillRepoStub) ListTeachableByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.listTeachableByUserFn(ctx, userID)
}
func (s *skillRepoStub) OwnerUserID(ctx context.Context, skillID uint) (uint, error) {
	return s.ownerUserIDFn(ctx, skillID)
}
func (s *skillRepoStub) Update(ctx context.Context, skill *models.Skill) error {
	return s.updateFn(ctx, skill)
}
func (s *skillRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createFn:              func(context.Context, *models.Skill) error { return nil },
		getByIDFn:             func(context.Context, uint) (*models.Skill, error) { return &models.Skill{ID: 1}, nil },
		listByProfileFn:       func(context.Context, uint) ([]models.Skill, error) { return nil, nil },
		listTeachableByUserFn: func(context.Context, uint) ([]models.Skill, error) { return nil, nil },
		ownerUserIDFn:         func(context.Context, uint) (uint, error) { return 0, nil },
		updateFn:              func(context.Context, *models.Skill) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
	}
}

type chatRepoStub struct {
	createWithNotificationFn func(context.Context, *models.ChatMessage, *models.Notification) error
	listBySwapFn             func(context.Context, uint, int, int) ([]*models.ChatMessage, error)
	countBySwapFn            func(context.Context, uint) (int64, error)
}

func (s *chatRepoStub) CreateWithNotification(ctx context.Context, msg *models.ChatMessage, n *models.Notification) error {
	return s.createWithNotificationFn(ctx, msg, n)
}
func (s *chatRepoStub) ListBySwap(ctx context.Context, swapID uint, limit, offset int) ([]*models.ChatMessage, error) {
	return s.listBySwapFn(ctx, swapID, limit, offset)
}
func (s *chatRepoStub) CountBySwap(ctx context.Context, swapID uint) (int64, error) {
	return s.countBySwapFn(ctx, swapID)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		createWithNotificationFn: func(context.Context, *models.ChatMessage, *models.Notification) error { return nil },
		listBySwapFn:             func(context.Context, uint, int, int) ([]*models.ChatMessage, error) { return nil, nil },
		countBySwapFn:            func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type userRepoStub struct {
	createWithProfileFn func(context.Context, *models.User, *models.Profile) error
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	updateFn            func(context.Context, *models.User) error
	deleteFn            func(context.Context, uint) error
}

func (s *userRepoStub) CreateWithProfile(ctx context.Context, u *models.User, p *models.Profile) error {
	return s.createWithProfileFn(ctx, u, p)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createWithProfileFn: func(context.Context, *models.User, *models.Profile) error { return nil },
		getByIDFn:           func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:     func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:        func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		updateFn:            func(context.Context, *models.User) error { return nil },
		deleteFn:            func(context.Context, uint) error { return nil },
	}
}

type notifRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	getByIDFn     func(context.Context, uint) (*models.Notification, error)
	listForUserFn func(context.Context, uint) ([]models.Notification, error)
	markReadFn    func(context.Context, uint, []uint) error
	markAllReadFn func(context.Context, uint) error
	unreadCountFn func(context.Context, uint) (int64, error)
}

func (s *notifRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notifRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notifRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *notifRepoStub) MarkRead(ctx context.Context, userID uint, ids []uint) error {
	return s.markReadFn(ctx, userID, ids)
}
func (s *notifRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *notifRepoStub) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.unreadCountFn(ctx, userID)
}

func noopNotifRepo() *notifRepoStub {
	return &notifRepoStub{
		createFn:      func(context.Context, *models.Notification) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Notification, error) { return &models.Notification{}, nil },
		listForUserFn: func(context.Context, uint) ([]models.Notification, error) { return nil, nil },
		markReadFn:    func(context.Context, uint, []uint) error { return nil },
		markAllReadFn: func(context.Context, uint) error { return nil },
		unreadCountFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type reviewRepoStub struct {
	createFn               func(context.Context, *models.Review) error
	getByIDFn              func(context.Context, uint) (*models.Review, error)
	listForSwapFn          func(context.Context, uint) ([]models.Review, error)
	listForUserFn          func(context.Context, uint) ([]models.Review, error)
	listGivenByUserFn      func(context.Context, uint) ([]models.Review, error)
	averageRatingForUserFn func(context.Context, uint) (float64, int64, error)
	topRatedMembersFn      func(context.Context, int) ([]repository.RatedMember, error)
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) ListForSwap(ctx context.Context, swapID uint) ([]models.Review, error) {
	return s.listForSwapFn(ctx, swapID)
}
func (s *reviewRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *reviewRepoStub) ListGivenByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listGivenByUserFn(ctx, userID)
}
func (s *reviewRepoStub) AverageRatingForUser(ctx context.Context, userID uint) (float64, int64, error) {
	return s.averageRatingForUserFn(ctx, userID)
}
func (s *reviewRepoStub) TopRatedMembers(ctx context.Context, limit int) ([]repository.RatedMember, error) {
	return s.topRatedMembersFn(ctx, limit)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:               func(context.Context, *models.Review) error { return nil },
		getByIDFn:              func(context.Context, uint) (*models.Review, error) { return &models.Review{}, nil },
		listForSwapFn:          func(context.Context, uint) ([]models.Review, error) { return nil, nil },
		listForUserFn:          func(context.Context, uint) ([]models.Review, error) { return nil, nil },
		listGivenByUserFn:      func(context.Context, uint) ([]models.Review, error) { return nil, nil },
		averageRatingForUserFn: func(context.Context, uint) (float64, int64, error) { return 0, 0, nil },
		topRatedMembersFn:      func(context.Context, int) ([]repository.RatedMember, error) { return nil, nil },
	}
}

type profileRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	updateFn      func(context.Context, *models.Profile) error
	searchFn      func(context.Context, string) ([]models.Profile, error)
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) Search(ctx context.Context, query string) ([]models.Profile, error) {
	return s.searchFn(ctx, query)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(context.Context, uint) (*models.Profile, error) { return &models.Profile{ID: 1}, nil },
		updateFn:      func(context.Context, *models.Profile) error { return nil },
		searchFn:      func(context.Context, string) ([]models.Profile, error) { return nil, nil },
	}
}
