package seed

import (
	"fmt"
	"log"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumSwaps    int
	ShouldClean bool
	SkipBcrypt  bool
}

// Seed populates the database with demo members, skills, swap requests,
// chats, notifications, and reviews.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d swap requests...", opts.NumUsers, opts.NumSwaps)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)
	f.SkipBcrypt = opts.SkipBcrypt

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users with skills", len(users))

	swaps, err := createSwaps(f, users, opts.NumSwaps)
	if err != nil {
		return fmt.Errorf("failed to create swap requests: %w", err)
	}
	log.Printf("created %d swap requests", len(swaps))

	if err := createActivity(f, swaps); err != nil {
		return fmt.Errorf("failed to create chat activity: %w", err)
	}

	log.Println("Seeding complete. All demo accounts use the password: password123")
	return nil
}

// createUsers builds members, each with one to three teachable skills and
// one wanted skill.
func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}

		teachable := f.rng.Intn(3) + 1
		for j := 0; j < teachable; j++ {
			if _, err := f.CreateSkill(user.Profile, true, false); err != nil {
				return nil, err
			}
		}
		if _, err := f.CreateSkill(user.Profile, false, true); err != nil {
			return nil, err
		}

		users = append(users, user)
	}
	return users, nil
}

// createSwaps pairs random members. Roughly half the requests are accepted,
// a handful declined, the rest left pending.
func createSwaps(f *Factory, users []*models.User, count int) ([]*models.SwapRequest, error) {
	if len(users) < 2 {
		return nil, nil
	}

	swaps := make([]*models.SwapRequest, 0, count)
	seen := make(map[string]bool)

	for attempts := 0; len(swaps) < count && attempts < count*4; attempts++ {
		from := users[f.rng.Intn(len(users))]
		to := users[f.rng.Intn(len(users))]
		if from.ID == to.ID {
			continue
		}

		offered, err := firstTeachableSkill(f.db, from)
		if err != nil {
			continue
		}
		requested, err := firstTeachableSkill(f.db, to)
		if err != nil {
			continue
		}

		key := fmt.Sprintf("%d-%d-%d-%d", from.ID, to.ID, offered.ID, requested.ID)
		if seen[key] {
			continue
		}
		seen[key] = true

		status := models.SwapStatusPending
		switch f.rng.Intn(10) {
		case 0, 1, 2, 3, 4:
			status = models.SwapStatusAccepted
		case 5:
			status = models.SwapStatusDeclined
		}

		swap, err := f.CreateSwap(from, to, offered, requested, status)
		if err != nil {
			// Unique tuple collision from an earlier run; skip it.
			continue
		}
		swaps = append(swaps, swap)
	}
	return swaps, nil
}

// createActivity fills accepted swaps with a short chat history and leaves
// reviews on some of them.
func createActivity(f *Factory, swaps []*models.SwapRequest) error {
	for _, swap := range swaps {
		if swap.Status != models.SwapStatusAccepted {
			continue
		}

		var from, to models.User
		if err := f.db.First(&from, swap.FromUserID).Error; err != nil {
			return err
		}
		if err := f.db.First(&to, swap.ToUserID).Error; err != nil {
			return err
		}

		lines := f.rng.Intn(6) + 2
		for i := 0; i < lines; i++ {
			sender := &from
			if i%2 == 1 {
				sender = &to
			}
			if _, err := f.CreateChatMessage(swap, sender); err != nil {
				return err
			}
		}

		if f.rng.Intn(2) == 0 {
			if _, err := f.CreateReview(swap, &to); err != nil {
				return err
			}
		}
		if f.rng.Intn(3) == 0 {
			if _, err := f.CreateReview(swap, &from); err != nil {
				return err
			}
		}
	}
	return nil
}

// firstTeachableSkill returns one of the user's teachable skills.
func firstTeachableSkill(db *gorm.DB, user *models.User) (*models.Skill, error) {
	var skill models.Skill
	err := db.Joins("JOIN profiles ON profiles.id = skills.profile_id").
		Where("profiles.user_id = ? AND skills.can_teach = ?", user.ID, true).
		Order("skills.id ASC").
		First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// clearData removes seedable rows in dependency order.
func clearData(db *gorm.DB) error {
	tables := []string{
		"reviews", "notifications", "chat_messages", "swap_requests",
		"skills", "profiles", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
