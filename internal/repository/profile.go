package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and
// their experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, edu *models.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// newestFirst orders list associations so the latest-added entry leads,
// matching the prepend semantics of the feed and profile lists.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Preload("Experiences", newestFirst).
			Preload("Education", newestFirst).
			Where("user_id = ?", userID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// invalidateOwner resolves the profile's owning user so the per-user
// cache entry can be dropped when only the profile id is at hand.
func (r *profileRepository) invalidateOwner(ctx context.Context, profileID uint) {
	var owner struct{ UserID uint }
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("user_id").
		Where("id = ?", profileID).
		Take(&owner).Error
	if err == nil && owner.UserID != 0 {
		cache.InvalidateProfile(ctx, owner.UserID)
		return
	}
	cache.Invalidate(ctx, cache.ProfileListKey())
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := cache.Aside(ctx, cache.ProfileListKey(), &profiles, cache.ProfileListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Preload("Experiences", newestFirst).
			Preload("Education", newestFirst).
			Order("id").
			Find(&profiles).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Profile already exists for this user")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateOwner(ctx, exp.ProfileID)
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Experience not found")
	}
	r.invalidateOwner(ctx, profileID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidateOwner(ctx, edu.ProfileID)
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Education not found")
	}
	r.invalidateOwner(ctx, profileID)
	return nil
}
