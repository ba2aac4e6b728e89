// Package githubapi proxies GitHub's repository-listing API.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/observability"
)

const defaultBaseURL = "https://api.github.com"

// Repo is the subset of a GitHub repository record exposed to clients.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
	CreatedAt   string `json:"created_at"`
}

// Client lists a user's public repositories, authenticated with a
// configured OAuth client id/secret pair.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClient returns a GitHub API client.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL returns a client pointed at an alternate API
// host. Used by tests.
func NewClientWithBaseURL(baseURL, clientID, clientSecret string) *Client {
	c := NewClient(clientID, clientSecret)
	c.baseURL = baseURL
	return c
}

// ListRepos returns the user's five most recent public repositories,
// oldest-created first. Any non-200 upstream response is reported as
// an upstream error so callers can translate it uniformly.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("User-Agent", "devconnect-api")
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.GithubProxyRequests.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No github profile found", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		observability.GithubProxyRequests.WithLabelValues("upstream_non_200").Inc()
		io.Copy(io.Discard, resp.Body)
		return nil, models.NewUpstreamError("No github profile found",
			fmt.Errorf("github responded with status %d", resp.StatusCode))
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		observability.GithubProxyRequests.WithLabelValues("decode_error").Inc()
		return nil, models.NewUpstreamError("No github profile found", err)
	}

	observability.GithubProxyRequests.WithLabelValues("ok").Inc()
	return repos, nil
}
