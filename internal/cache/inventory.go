package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	ProfileKeyPrefix     = "profile:%d"
	SkillSearchKeyPrefix = "skills:search:%s"
	DashboardKeyPrefix   = "dashboard:%d"
)

const (
	UserTTL        = 5 * time.Minute
	ProfileTTL     = 5 * time.Minute
	SkillSearchTTL = 2 * time.Minute
	DashboardTTL   = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func SkillSearchKey(query string) string {
	return fmt.Sprintf(SkillSearchKeyPrefix, query)
}

func DashboardKey(userID uint) string {
	return fmt.Sprintf(DashboardKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, DashboardKey(userID))
}

// InvalidateSkillSearches drops all cached skill search results.
func InvalidateSkillSearches(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "skills:search:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
