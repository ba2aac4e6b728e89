package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix        = "user:%d"
	profileKeyPrefix     = "profile:user:%d"
	profileListKey       = "profiles:all"
	githubReposKeyPrefix = "github:repos:%s"
)

const (
	UserTTL        = 5 * time.Minute
	ProfileTTL     = 5 * time.Minute
	ProfileListTTL = 1 * time.Minute
	GithubRepoTTL  = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

func ProfileListKey() string {
	return profileListKey
}

func GithubReposKey(username string) string {
	return fmt.Sprintf(githubReposKeyPrefix, username)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateUser drops a user's cached record.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateProfile drops a user's cached profile and the profile listing.
func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID), profileListKey)
}
