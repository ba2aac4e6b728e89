package githubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListRepos_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "id-123", r.URL.Query().Get("client_id"))

		_ = json.NewEncoder(w).Encode([]Repo{
			{ID: 1, Name: "hello-world", HTMLURL: "https://github.com/octocat/hello-world"},
			{ID: 2, Name: "spoon-knife"},
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "id-123", "secret-456")
	repos, err := c.ListRepos(context.Background(), "octocat")
	assert.NoError(t, err)
	assert.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
}

func TestListRepos_UpstreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "", "")
	repos, err := c.ListRepos(context.Background(), "nobody")
	assert.Nil(t, repos)
	assert.Error(t, err)

	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, models.CodeUpstream, appErr.Code)
	assert.Equal(t, "No github profile found", appErr.Message)
}

func TestListRepos_NoCredentialsOmitsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("client_id"))
		_ = json.NewEncoder(w).Encode([]Repo{})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "", "")
	_, err := c.ListRepos(context.Background(), "octocat")
	assert.NoError(t, err)
}
