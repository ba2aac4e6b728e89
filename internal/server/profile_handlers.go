package server

import (
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/githubapi"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.Get(c.Context(), currentUserID(c))
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeNotFound {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("There is no profile for this user"))
		}
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profile
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUserID handles GET /api/profile/user/:id
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id", "Profile not found")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.Get(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var in service.UpsertProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	in.UserID = currentUserID(c)

	profile, err := s.profileService.Upsert(c.Context(), in)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile, removing the caller's
// posts, profile and user record.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.accountService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}

// historyEntryRequest is the shared payload shape for experience and
// education entries. Dates arrive as "2006-01-02" or RFC 3339 strings.
type historyEntryRequest struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	Location     string `json:"location"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// parseDate accepts a date-only or full timestamp string. The zero time
// signals absence; required-date validation happens in the service.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r historyEntryRequest) dates(c *fiber.Ctx) (time.Time, *time.Time, bool) {
	from, ok := parseDate(r.From)
	if !ok {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError([]models.FieldError{
				{Field: "from", Msg: "From date is required"},
			}))
		return time.Time{}, nil, false
	}

	var to *time.Time
	if t, ok := parseDate(r.To); !ok {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError([]models.FieldError{
				{Field: "to", Msg: "To date is invalid"},
			}))
		return time.Time{}, nil, false
	} else if !t.IsZero() {
		to = &t
	}
	return from, to, true
}

// AddExperience handles PUT /api/profile/experiences
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req historyEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	from, to, ok := req.dates(c)
	if !ok {
		return nil
	}

	profile, err := s.profileService.AddExperience(c.Context(), service.AddExperienceInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experiences/:id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := s.parseID(c, "id", "Experience not found")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteExperience(c.Context(), currentUserID(c), expID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req historyEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	from, to, ok := req.dates(c)
	if !ok {
		return nil
	}

	profile, err := s.profileService.AddEducation(c.Context(), service.AddEducationInput{
		UserID:       currentUserID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:id
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := s.parseID(c, "id", "Education not found")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteEducation(c.Context(), currentUserID(c), eduID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// GetGithubRepos handles GET /api/profile/github/:username, proxying
// the five most recent repositories. Responses are cached so bursts of
// profile views do not burn the upstream quota.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	var repos []githubapi.Repo
	err := cache.Aside(c.Context(), cache.GithubReposKey(username), &repos, cache.GithubRepoTTL, func() error {
		fetched, err := s.github.ListRepos(c.Context(), username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(repos)
}
