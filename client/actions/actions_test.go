package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnect/client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal in-memory stand-in for the backend.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /api/users", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["name"] == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"errors": []map[string]string{
					{"field": "name", "msg": "Name is required"},
					{"field": "email", "msg": "Please include a valid email"},
					{"field": "password", "msg": "Please enter a password with 6 or more characters"},
				},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "test-token"})
	})

	mux.HandleFunc("POST /api/auth", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "password123" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid Credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "test-token"})
	})

	mux.HandleFunc("GET /api/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token is not valid"})
			return
		}
		writeJSON(w, http.StatusOK, store.User{ID: 1, Name: "Alice", Email: "alice@example.com"})
	})

	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []store.Profile{{ID: 1, UserID: 1, Status: "Developer"}})
	})

	mux.HandleFunc("POST /api/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Profile{ID: 1, UserID: 1, Status: "Developer"})
	})

	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []store.Post{{ID: 1, Text: "hello"}, {ID: 2, Text: "world"}})
	})

	mux.HandleFunc("PUT /api/posts/like/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []store.Like{{ID: 5, UserID: 1}})
	})

	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *store.Store) {
	t.Helper()
	api := fakeAPI(t)
	t.Cleanup(api.Close)

	st := store.New(nil)
	return New(api.URL, st, opts...), st
}

func TestRegisterSuccessLoadsUser(t *testing.T) {
	c, st := newTestClient(t)

	require.NoError(t, c.Register(context.Background(), "Alice", "alice@example.com", "password123"))

	state := st.State()
	assert.True(t, state.Auth.Authenticated)
	assert.Equal(t, "test-token", state.Auth.Token)
	require.NotNil(t, state.Auth.User)
	assert.Equal(t, "Alice", state.Auth.User.Name)

	token, err := st.Tokens().Load()
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
}

func TestRegisterValidationFansOutAlerts(t *testing.T) {
	c, st := newTestClient(t)

	err := c.Register(context.Background(), "", "bad", "123")
	require.Error(t, err)

	state := st.State()
	assert.False(t, state.Auth.Authenticated)
	assert.Len(t, state.Alerts, 3)
}

func TestLoginFailureRaisesSingleAlert(t *testing.T) {
	c, st := newTestClient(t)

	err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)

	state := st.State()
	assert.False(t, state.Auth.Authenticated)
	require.Len(t, state.Alerts, 1)
	assert.Equal(t, "Invalid Credentials", state.Alerts[0].Message)

	token, err := st.Tokens().Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLoadUserWithoutToken(t *testing.T) {
	c, st := newTestClient(t)

	_ = c.LoadUser(context.Background())

	state := st.State()
	assert.False(t, state.Auth.Authenticated)
	assert.False(t, state.Auth.Loading)
}

func TestAlertAutoRemoval(t *testing.T) {
	c, st := newTestClient(t, WithAlertTimeout(20*time.Millisecond))

	c.SetAlert("transient", "success")
	require.Len(t, st.State().Alerts, 1)

	assert.Eventually(t, func() bool {
		return len(st.State().Alerts) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSaveProfileNavigatesToDashboard(t *testing.T) {
	var navigatedTo string
	c, st := newTestClient(t, WithNavigator(func(path string) {
		navigatedTo = path
	}))

	require.NoError(t, c.SaveProfile(context.Background(), ProfileInput{
		Status: "Developer",
		Skills: "Go",
	}, false))

	assert.Equal(t, "/dashboard", navigatedTo)
	state := st.State()
	require.NotNil(t, state.Profile.Profile)
	require.Len(t, state.Alerts, 1)
	assert.Equal(t, "Profile Created", state.Alerts[0].Message)
}

func TestGetProfilesClearsCurrentFirst(t *testing.T) {
	c, st := newTestClient(t)
	st.Dispatch(store.ProfileLoadedEvent{Profile: store.Profile{ID: 42}})

	var sawCleared bool
	st.Subscribe(func(s store.State) {
		if s.Profile.Profile == nil {
			sawCleared = true
		}
	})

	require.NoError(t, c.GetProfiles(context.Background()))

	assert.True(t, sawCleared)
	assert.Len(t, st.State().Profile.Profiles, 1)
}

func TestGetPostsDispatchesExactlyOneEvent(t *testing.T) {
	c, st := newTestClient(t)

	var transitions int
	st.Subscribe(func(store.State) { transitions++ })

	require.NoError(t, c.GetPosts(context.Background()))

	assert.Equal(t, 1, transitions)
	assert.Len(t, st.State().Post.Posts, 2)
}

func TestAddLikePatchesMatchingPost(t *testing.T) {
	c, st := newTestClient(t)
	require.NoError(t, c.GetPosts(context.Background()))

	require.NoError(t, c.AddLike(context.Background(), 2))

	posts := st.State().Post.Posts
	require.Len(t, posts, 2)
	assert.Empty(t, posts[0].Likes)
	require.Len(t, posts[1].Likes, 1)
}

func TestGuardDecisions(t *testing.T) {
	assert.Equal(t, Loading, Guard(store.State{Auth: store.AuthState{Loading: true}}))
	assert.Equal(t, Render, Guard(store.State{Auth: store.AuthState{Authenticated: true}}))
	assert.Equal(t, RedirectLogin, Guard(store.State{}))
}
