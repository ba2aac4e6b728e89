package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertAppendAndTargetedRemove(t *testing.T) {
	s := New(nil)

	s.Dispatch(SetAlertEvent{ID: "a", Message: "first", Kind: "danger"})
	s.Dispatch(SetAlertEvent{ID: "b", Message: "second", Kind: "success"})
	require.Len(t, s.State().Alerts, 2)

	// Removing one alert leaves the other intact.
	s.Dispatch(RemoveAlertEvent{ID: "a"})
	alerts := s.State().Alerts
	require.Len(t, alerts, 1)
	assert.Equal(t, "b", alerts[0].ID)

	// Removing an unknown id is a no-op.
	s.Dispatch(RemoveAlertEvent{ID: "ghost"})
	assert.Len(t, s.State().Alerts, 1)
}

func TestAuthTokenPersistence(t *testing.T) {
	tokens := NewMemoryTokenStorage()
	s := New(tokens)

	s.Dispatch(LoginSuccessEvent{Token: "jwt-1"})
	state := s.State()
	assert.True(t, state.Auth.Authenticated)
	assert.Equal(t, "jwt-1", state.Auth.Token)
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", saved)

	s.Dispatch(LogoutEvent{})
	state = s.State()
	assert.False(t, state.Auth.Authenticated)
	assert.Empty(t, state.Auth.Token)
	saved, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestAuthFailureClearsToken(t *testing.T) {
	tokens := NewMemoryTokenStorage()
	require.NoError(t, tokens.Save("stale"))
	s := New(tokens)

	s.Dispatch(AuthErrorEvent{})
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestClearProfileResetsSlice(t *testing.T) {
	s := New(nil)
	s.Dispatch(ProfileLoadedEvent{Profile: Profile{ID: 1, Status: "Developer"}})
	require.NotNil(t, s.State().Profile.Profile)

	s.Dispatch(ClearProfileEvent{})
	state := s.State()
	assert.Nil(t, state.Profile.Profile)
	assert.Empty(t, state.Profile.Repos)
	assert.False(t, state.Profile.Loading)
}

func TestLikesUpdatePatchesOnlyMatchingPost(t *testing.T) {
	s := New(nil)
	s.Dispatch(PostsLoadedEvent{Posts: []Post{
		{ID: 1, Text: "one"},
		{ID: 2, Text: "two"},
	}})

	s.Dispatch(LikesUpdatedEvent{PostID: 2, Likes: []Like{{ID: 7, UserID: 9}}})

	posts := s.State().Post.Posts
	require.Len(t, posts, 2)
	assert.Empty(t, posts[0].Likes)
	require.Len(t, posts[1].Likes, 1)
	assert.EqualValues(t, 9, posts[1].Likes[0].UserID)
}

func TestPostAddedPrepends(t *testing.T) {
	s := New(nil)
	s.Dispatch(PostsLoadedEvent{Posts: []Post{{ID: 1, Text: "old"}}})
	s.Dispatch(PostAddedEvent{Post: Post{ID: 2, Text: "new"}})

	posts := s.State().Post.Posts
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Text)
}

func TestReducersLeavePreviousStateUntouched(t *testing.T) {
	s := New(nil)
	s.Dispatch(PostsLoadedEvent{Posts: []Post{{ID: 1}}})
	before := s.State()

	s.Dispatch(PostDeletedEvent{PostID: 1})

	// The snapshot taken before the transition still holds the post.
	assert.Len(t, before.Post.Posts, 1)
	assert.Empty(t, s.State().Post.Posts)
}

func TestSubscribersSeeEachTransition(t *testing.T) {
	s := New(nil)
	var seen []int
	s.Subscribe(func(st State) {
		seen = append(seen, len(st.Alerts))
	})

	s.Dispatch(SetAlertEvent{ID: "a", Message: "m"})
	s.Dispatch(RemoveAlertEvent{ID: "a"})

	assert.Equal(t, []int{1, 0}, seen)
}

func TestFileTokenStorage(t *testing.T) {
	path := t.TempDir() + "/session/token"
	tokens := NewFileTokenStorage(path)

	loaded, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, tokens.Save("jwt-file"))
	loaded, err = tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-file", loaded)

	require.NoError(t, tokens.Clear())
	loaded, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
