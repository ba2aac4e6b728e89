// Package service implements the application's business rules on top of
// the repository layer.
package service

import (
	"context"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// ProfileService owns profile upsert semantics and the
// experience/education sub-lists.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpsertProfileInput carries the create-or-update payload. Empty
// optional fields leave the stored value untouched.
type UpsertProfileInput struct {
	UserID         uint
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// AddExperienceInput carries one work-history entry.
type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// AddEducationInput carries one schooling entry.
type AddEducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// Get returns the profile for a user, joined with the user record.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// List returns every profile with denormalized user name/avatar.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or updates it in place. Status
// and skills are required; the skills string is split on commas and
// trimmed. Optional fields that arrive empty are not cleared.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	var fields []models.FieldError
	if fe := validation.Required("status", in.Status, "Status is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validation.Required("skills", in.Skills, "Skills are required"); fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	skills := validation.SplitSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "skills", Msg: "Skills are required"},
		})
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); !ok || appErr.Code != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Status = in.Status
	profile.Skills = skills
	applyIfSet(&profile.Company, in.Company)
	applyIfSet(&profile.Website, in.Website)
	applyIfSet(&profile.Location, in.Location)
	applyIfSet(&profile.Bio, in.Bio)
	applyIfSet(&profile.GithubUsername, in.GithubUsername)
	applyIfSet(&profile.Social.Youtube, in.Youtube)
	applyIfSet(&profile.Social.Twitter, in.Twitter)
	applyIfSet(&profile.Social.Facebook, in.Facebook)
	applyIfSet(&profile.Social.Linkedin, in.Linkedin)
	applyIfSet(&profile.Social.Instagram, in.Instagram)

	if profile.ID == 0 {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// applyIfSet writes value over dst only when the caller supplied one.
func applyIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// AddExperience validates and prepends a work-history entry to the
// caller's profile, returning the refreshed profile.
func (s *ProfileService) AddExperience(ctx context.Context, in AddExperienceInput) (*models.Profile, error) {
	var fields []models.FieldError
	if fe := validation.Required("title", in.Title, "Title is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validation.Required("company", in.Company, "Company is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if in.From.IsZero() {
		fields = append(fields, models.FieldError{Field: "from", Msg: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteExperience removes an entry by id from the caller's own profile.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation validates and prepends a schooling entry to the caller's
// profile, returning the refreshed profile.
func (s *ProfileService) AddEducation(ctx context.Context, in AddEducationInput) (*models.Profile, error) {
	var fields []models.FieldError
	if fe := validation.Required("school", in.School, "School is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validation.Required("degree", in.Degree, "Degree is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := validation.Required("fieldofstudy", in.FieldOfStudy, "Field of study is required"); fe != nil {
		fields = append(fields, *fe)
	}
	if in.From.IsZero() {
		fields = append(fields, models.FieldError{Field: "from", Msg: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteEducation removes an entry by id from the caller's own profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}
