package repository

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, repo UserRepository, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hashed"}
	assert.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestProfileRepository_CreateAndGetByUserID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "Ada", "ada@example.com")

	profile := &models.Profile{
		UserID: user.ID,
		Status: "Developer",
		Skills: []string{"js", "go"},
		Social: models.Social{Twitter: "https://twitter.com/ada"},
	}
	assert.NoError(t, profiles.Create(ctx, profile))

	got, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"js", "go"}, got.Skills)
	assert.Equal(t, "Ada", got.User.Name)
	assert.Equal(t, "https://twitter.com/ada", got.Social.Twitter)
}

func TestProfileRepository_OneProfilePerUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "Ada", "ada@example.com")

	assert.NoError(t, profiles.Create(ctx, &models.Profile{UserID: user.ID, Status: "Dev", Skills: []string{"go"}}))
	err := profiles.Create(ctx, &models.Profile{UserID: user.ID, Status: "Dev", Skills: []string{"go"}})
	assert.Error(t, err)
}

func TestProfileRepository_GetByUserID_Missing(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileRepository(db)

	_, err := profiles.GetByUserID(context.Background(), 999)
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestProfileRepository_ExperienceLifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "Ada", "ada@example.com")
	profile := &models.Profile{UserID: user.ID, Status: "Dev", Skills: []string{"go"}}
	assert.NoError(t, profiles.Create(ctx, profile))

	first := &models.Experience{
		ProfileID: profile.ID,
		Title:     "Engineer",
		Company:   "Analytical Engines Ltd",
		From:      time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	second := &models.Experience{
		ProfileID: profile.ID,
		Title:     "Senior Engineer",
		Company:   "Analytical Engines Ltd",
		From:      time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, profiles.AddExperience(ctx, first))
	assert.NoError(t, profiles.AddExperience(ctx, second))

	got, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Experiences, 2)
	// Latest addition leads the list.
	assert.Equal(t, "Senior Engineer", got.Experiences[0].Title)

	assert.NoError(t, profiles.DeleteExperience(ctx, profile.ID, first.ID))

	got, err = profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Experiences, 1)
	assert.Equal(t, "Senior Engineer", got.Experiences[0].Title)
}

func TestProfileRepository_DeleteExperience_WrongProfile(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "Ada", "ada@example.com")
	other := seedUser(t, users, "Eve", "eve@example.com")

	ownerProfile := &models.Profile{UserID: owner.ID, Status: "Dev", Skills: []string{"go"}}
	otherProfile := &models.Profile{UserID: other.ID, Status: "Dev", Skills: []string{"go"}}
	assert.NoError(t, profiles.Create(ctx, ownerProfile))
	assert.NoError(t, profiles.Create(ctx, otherProfile))

	exp := &models.Experience{
		ProfileID: ownerProfile.ID,
		Title:     "Engineer",
		Company:   "ACME",
		From:      time.Now(),
	}
	assert.NoError(t, profiles.AddExperience(ctx, exp))

	// Someone else's profile id cannot reach the entry.
	err := profiles.DeleteExperience(ctx, otherProfile.ID, exp.ID)
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestProfileRepository_EducationLifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "Ada", "ada@example.com")
	profile := &models.Profile{UserID: user.ID, Status: "Dev", Skills: []string{"go"}}
	assert.NoError(t, profiles.Create(ctx, profile))

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       "University of London",
		Degree:       "BSc",
		FieldOfStudy: "Mathematics",
		From:         time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, profiles.AddEducation(ctx, edu))

	got, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Education, 1)

	assert.NoError(t, profiles.DeleteEducation(ctx, profile.ID, edu.ID))
	err = profiles.DeleteEducation(ctx, profile.ID, edu.ID)
	assert.Error(t, err)
}

func TestProfileRepository_List(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "Ada", "ada@example.com")
	b := seedUser(t, users, "Grace", "grace@example.com")
	assert.NoError(t, profiles.Create(ctx, &models.Profile{UserID: a.ID, Status: "Dev", Skills: []string{"go"}}))
	assert.NoError(t, profiles.Create(ctx, &models.Profile{UserID: b.ID, Status: "Dev", Skills: []string{"cobol"}}))

	all, err := profiles.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Ada", all[0].User.Name)
	assert.Equal(t, "Grace", all[1].User.Name)
}

func TestProfileRepository_CachedReads(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "Ada", "ada@example.com")
	profile := &models.Profile{UserID: user.ID, Status: "Dev", Skills: []string{"go"}}
	assert.NoError(t, profiles.Create(ctx, profile))

	got, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Dev", got.Status)
	assert.True(t, mr.Exists(cache.ProfileKey(user.ID)))

	// A repeat read is served from the cache: a row inserted behind
	// the repository's back stays invisible until invalidation.
	assert.NoError(t, db.Create(&models.Experience{
		ProfileID: profile.ID,
		Title:     "Engineer",
		Company:   "Analytical Engines Ltd",
		From:      time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	cached, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, cached.Experiences)

	// Mutating through the repository drops the per-user entry, so
	// the next read reflects every row.
	assert.NoError(t, profiles.AddExperience(ctx, &models.Experience{
		ProfileID: profile.ID,
		Title:     "Senior Engineer",
		Company:   "Analytical Engines Ltd",
		From:      time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	}))
	assert.False(t, mr.Exists(cache.ProfileKey(user.ID)))

	fresh, err := profiles.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, fresh.Experiences, 2)
}
