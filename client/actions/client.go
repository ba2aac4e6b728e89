// Package actions is the client's HTTP layer: each action issues one
// API call and dispatches exactly one success or error event into the
// store, with validation errors fanned out as alerts.
package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"devconnect/client/store"
)

const defaultAlertTimeout = 5 * time.Second

// Client drives the API on behalf of the store.
type Client struct {
	http         *http.Client
	baseURL      string
	store        *store.Store
	navigate     func(path string)
	alertTimeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithNavigator sets the callback invoked when an action requests a
// client-side navigation.
func WithNavigator(fn func(path string)) Option {
	return func(c *Client) { c.navigate = fn }
}

// WithAlertTimeout overrides how long alerts stay before their
// deferred removal fires.
func WithAlertTimeout(d time.Duration) Option {
	return func(c *Client) { c.alertTimeout = d }
}

// New returns a Client bound to the store. Call LoadUser afterwards to
// restore a persisted session.
func New(baseURL string, st *store.Store, opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: 15 * time.Second},
		baseURL:      baseURL,
		store:        st,
		navigate:     func(string) {},
		alertTimeout: defaultAlertTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the API's error envelope: either a single message or a
// field error list.
type apiError struct {
	Status  int
	Message string
	Fields  []fieldError
}

type fieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return e.Fields[0].Msg
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// do issues one JSON request. The session token, when persisted, rides
// along on every call. A non-2xx response decodes into *apiError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (*apiError, error) {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, err := c.store.Tokens().Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error  string       `json:"error"`
			Errors []fieldError `json:"errors"`
		}
		_ = json.Unmarshal(data, &envelope)
		return &apiError{
			Status:  resp.StatusCode,
			Message: envelope.Error,
			Fields:  envelope.Errors,
		}, nil
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// fanOutFieldErrors raises one alert per validation message.
func (c *Client) fanOutFieldErrors(apiErr *apiError) {
	for _, fe := range apiErr.Fields {
		c.SetAlert(fe.Msg, "danger")
	}
}
