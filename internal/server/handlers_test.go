package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTestServer builds a Server over an in-memory sqlite database
// with the full repository/service wiring but no Redis and no metrics.
func setupHandlerTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	s := &Server{
		config: &config.Config{
			JWTSecret: "test_secret_long_enough_for_validation_checks",
			Port:      "8080",
		},
		db:         db,
		userRepo:   userRepo,
		skillRepo:  skillRepo,
		swapRepo:   swapRepo,
		chatRepo:   chatRepo,
		notifRepo:  notifRepo,
		reviewRepo: reviewRepo,
	}
	s.userService = service.NewUserService(userRepo, profileRepo)
	s.skillService = service.NewSkillService(skillRepo, profileRepo)
	s.swapService = service.NewSwapService(swapRepo, skillRepo)
	s.chatService = service.NewChatService(chatRepo, swapRepo, userRepo)
	s.notifService = service.NewNotificationService(notifRepo)
	s.reviewService = service.NewReviewService(reviewRepo, swapRepo)

	return s, db
}

// seedMember creates a user with a profile and one teachable skill.
func seedMember(t *testing.T, db *gorm.DB, username, skillName string) (*models.User, *models.Skill) {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}

	profile := &models.Profile{UserID: user.ID, FullName: username + " Test"}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create profile for %s: %v", username, err)
	}

	skill := &models.Skill{ProfileID: profile.ID, Name: skillName, CanTeach: true}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("create skill for %s: %v", username, err)
	}

	user.Profile = profile
	return user, skill
}

// newAuthedApp returns a Fiber app whose requests all run as the given user,
// bypassing JWT verification.
func newAuthedApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

// doJSON performs a request with an optional JSON body and returns the response.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	resp, err := app.Test(newJSONRequest(t, method, path, body), -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
