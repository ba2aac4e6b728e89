package actions

import (
	"context"
	"net/http"

	"devconnect/client/store"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// LoadUser restores the session from the persisted token by fetching
// the current user. Call once after New, and after login or register.
func (c *Client) LoadUser(ctx context.Context) error {
	token, err := c.store.Tokens().Load()
	if err != nil || token == "" {
		c.store.Dispatch(store.AuthErrorEvent{})
		return err
	}

	var user store.User
	apiErr, err := c.do(ctx, http.MethodGet, "/api/auth", nil, &user)
	if err != nil {
		c.store.Dispatch(store.AuthErrorEvent{})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.AuthErrorEvent{})
		return apiErr
	}

	c.store.Dispatch(store.UserLoadedEvent{User: user})
	return nil
}

// Register creates an account. Validation messages fan out as alerts.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var resp tokenResponse
	apiErr, err := c.do(ctx, http.MethodPost, "/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		c.store.Dispatch(store.RegisterFailEvent{})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		if apiErr.Message != "" {
			c.SetAlert(apiErr.Message, "danger")
		}
		c.store.Dispatch(store.RegisterFailEvent{})
		return apiErr
	}

	c.store.Dispatch(store.RegisterSuccessEvent{Token: resp.Token})
	return c.LoadUser(ctx)
}

// Login starts a session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	apiErr, err := c.do(ctx, http.MethodPost, "/api/auth", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		c.store.Dispatch(store.LoginFailEvent{})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		if apiErr.Message != "" {
			c.SetAlert(apiErr.Message, "danger")
		}
		c.store.Dispatch(store.LoginFailEvent{})
		return apiErr
	}

	c.store.Dispatch(store.LoginSuccessEvent{Token: resp.Token})
	return c.LoadUser(ctx)
}

// Logout ends the session and clears session-scoped slices.
func (c *Client) Logout() {
	c.store.Dispatch(store.LogoutEvent{})
}
