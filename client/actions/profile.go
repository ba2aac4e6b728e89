package actions

import (
	"context"
	"fmt"
	"net/http"

	"devconnect/client/store"
)

// ProfileInput is the create-or-update payload. Empty optional fields
// leave the stored values untouched.
type ProfileInput struct {
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
	GithubUsername string `json:"githubusername,omitempty"`
	Youtube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
}

// ExperienceInput is one work-history entry. Dates use "2006-01-02".
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationInput is one schooling entry.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// GetCurrentProfile fetches the caller's own profile.
func (c *Client) GetCurrentProfile(ctx context.Context) error {
	var profile store.Profile
	apiErr, err := c.do(ctx, http.MethodGet, "/api/profile/me", nil, &profile)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.ProfileLoadedEvent{Profile: profile})
	return nil
}

// GetProfiles fetches the public profile list. The current profile is
// cleared first so navigation never flashes a stale one.
func (c *Client) GetProfiles(ctx context.Context) error {
	c.store.Dispatch(store.ClearProfileEvent{})

	var profiles []store.Profile
	apiErr, err := c.do(ctx, http.MethodGet, "/api/profile", nil, &profiles)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.ProfilesLoadedEvent{Profiles: profiles})
	return nil
}

// GetProfileByUserID fetches another user's profile.
func (c *Client) GetProfileByUserID(ctx context.Context, userID uint) error {
	var profile store.Profile
	apiErr, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profile/user/%d", userID), nil, &profile)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.ProfileLoadedEvent{Profile: profile})
	return nil
}

// GetGithubRepos fetches a user's recent GitHub repositories.
func (c *Client) GetGithubRepos(ctx context.Context, username string) error {
	var repos []store.Repo
	apiErr, err := c.do(ctx, http.MethodGet, "/api/profile/github/"+username, nil, &repos)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.ReposLoadedEvent{Repos: repos})
	return nil
}

// SaveProfile creates or updates the caller's profile and navigates to
// the dashboard on success.
func (c *Client) SaveProfile(ctx context.Context, in ProfileInput, edit bool) error {
	var profile store.Profile
	apiErr, err := c.do(ctx, http.MethodPost, "/api/profile", in, &profile)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.ProfileLoadedEvent{Profile: profile})
	if edit {
		c.SetAlert("Profile Updated", "success")
	} else {
		c.SetAlert("Profile Created", "success")
	}
	c.navigate("/dashboard")
	return nil
}

// AddExperience appends a work-history entry and navigates to the
// dashboard on success.
func (c *Client) AddExperience(ctx context.Context, in ExperienceInput) error {
	return c.mutateProfile(ctx, http.MethodPut, "/api/profile/experiences", in, "Experience Added")
}

// DeleteExperience removes a work-history entry.
func (c *Client) DeleteExperience(ctx context.Context, id uint) error {
	return c.mutateProfile(ctx, http.MethodDelete,
		fmt.Sprintf("/api/profile/experiences/%d", id), nil, "Experience Removed")
}

// AddEducation appends a schooling entry and navigates to the
// dashboard on success.
func (c *Client) AddEducation(ctx context.Context, in EducationInput) error {
	return c.mutateProfile(ctx, http.MethodPut, "/api/profile/education", in, "Education Added")
}

// DeleteEducation removes a schooling entry.
func (c *Client) DeleteEducation(ctx context.Context, id uint) error {
	return c.mutateProfile(ctx, http.MethodDelete,
		fmt.Sprintf("/api/profile/education/%d", id), nil, "Education Removed")
}

func (c *Client) mutateProfile(ctx context.Context, method, path string, body any, successMsg string) error {
	var profile store.Profile
	apiErr, err := c.do(ctx, method, path, body, &profile)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.ProfileLoadedEvent{Profile: profile})
	c.SetAlert(successMsg, "success")
	c.navigate("/dashboard")
	return nil
}

// DeleteAccount removes the caller's account, posts and profile.
func (c *Client) DeleteAccount(ctx context.Context) error {
	apiErr, err := c.do(ctx, http.MethodDelete, "/api/profile", nil, nil)
	if err != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.ProfileErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.AccountDeletedEvent{})
	c.SetAlert("Your account has been permanently deleted", "")
	return nil
}
