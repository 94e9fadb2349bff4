// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// skillCatalog groups believable skill names by category. Seeded members
// draw from this pool so searches return sensible results.
var skillCatalog = map[string][]string{
	"Music":     {"Guitar", "Piano", "Violin", "Singing", "Music Production", "Drums"},
	"Languages": {"Spanish", "French", "Japanese", "German", "Mandarin", "Italian"},
	"Tech":      {"Python", "Web Development", "Data Analysis", "Linux", "Photography Editing"},
	"Crafts":    {"Woodworking", "Knitting", "Pottery", "Baking", "Gardening"},
	"Fitness":   {"Yoga", "Rock Climbing", "Swimming", "Chess", "Salsa Dancing"},
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand

	// SkipBcrypt stores a cheap plaintext password instead of hashing,
	// for fast local seeding. Seeded accounts only.
	SkipBcrypt bool
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user with a profile.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	if f.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:         user.ID,
		FullName:       gofakeit.Name(),
		Bio:            gofakeit.Sentence(12),
		Location:       gofakeit.City(),
		LookingToLearn: f.randomSkillName(),
		AvatarURL:      fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	user.Profile = profile
	return user, nil
}

// CreateSkill attaches a randomly drawn skill to the profile. At least one
// of canTeach/wantToLearn should be set, mirroring the API's validation.
func (f *Factory) CreateSkill(profile *models.Profile, canTeach, wantToLearn bool) (*models.Skill, error) {
	category := f.randomCategory()
	names := skillCatalog[category]

	skill := &models.Skill{
		ProfileID:   profile.ID,
		Name:        names[f.rng.Intn(len(names))],
		Category:    category,
		CanTeach:    canTeach,
		WantToLearn: wantToLearn,
	}
	if err := f.db.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// CreateSwap persists a swap request between two members with a realistic
// created_at spread over the past weeks.
func (f *Factory) CreateSwap(from, to *models.User, offered, requested *models.Skill, status models.SwapStatus) (*models.SwapRequest, error) {
	swap := &models.SwapRequest{
		FromUserID:       from.ID,
		ToUserID:         to.ID,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Status:           status,
		CreatedAt:        f.pastTime(45),
	}
	if err := f.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// CreateChatMessage persists a chat line plus the unread notification the
// counterpart would have received.
func (f *Factory) CreateChatMessage(swap *models.SwapRequest, sender *models.User) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		SwapRequestID: swap.ID,
		SenderID:      sender.ID,
		Content:       gofakeit.Sentence(f.rng.Intn(10) + 3),
		CreatedAt:     f.pastTime(14),
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}

	notif := &models.Notification{
		UserID:    swap.Counterpart(sender.ID),
		Message:   "New message from " + sender.Username,
		Link:      fmt.Sprintf("/chat/%d/", swap.ID),
		IsRead:    f.rng.Intn(2) == 0,
		CreatedAt: msg.CreatedAt,
	}
	if err := f.db.Create(notif).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// CreateReview persists a review by one swap participant.
func (f *Factory) CreateReview(swap *models.SwapRequest, reviewer *models.User) (*models.Review, error) {
	review := &models.Review{
		SwapRequestID: swap.ID,
		ReviewerID:    reviewer.ID,
		Rating:        f.rng.Intn(3) + 3, // seeded communities skew positive
		Comment:       gofakeit.Sentence(8),
		CreatedAt:     f.pastTime(7),
	}
	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (f *Factory) randomCategory() string {
	categories := make([]string, 0, len(skillCatalog))
	for c := range skillCatalog {
		categories = append(categories, c)
	}
	return categories[f.rng.Intn(len(categories))]
}

func (f *Factory) randomSkillName() string {
	names := skillCatalog[f.randomCategory()]
	return names[f.rng.Intn(len(names))]
}

func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
