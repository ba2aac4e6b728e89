package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateSnapshotsAuthor(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	user := env.createUser(t, "Alice", "alice@example.com")

	post, err := svc.Create(context.Background(), user.ID, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, user.Avatar, post.Avatar)
	assert.Equal(t, "hello world", post.Text)
}

func TestPostCreateRequiresText(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	user := env.createUser(t, "Alice", "alice@example.com")

	_, err := svc.Create(context.Background(), user.ID, "   ")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "Text is required", appErr.Fields[0].Msg)
}

func TestPostDeleteOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := svc.Create(context.Background(), alice.ID, "mine")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), bob.ID, post.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "User not authorized", appErr.Message)

	require.NoError(t, svc.Delete(context.Background(), alice.ID, post.ID))

	_, err = svc.Get(context.Background(), post.ID)
	require.Error(t, err)
}

func TestPostLikeUnlike(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := svc.Create(context.Background(), alice.ID, "like me")
	require.NoError(t, err)

	likes, err := svc.Like(context.Background(), bob.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, bob.ID, likes[0].UserID)

	_, err = svc.Like(context.Background(), bob.ID, post.ID)
	require.Error(t, err)
	assert.Equal(t, "Post already liked", err.(*models.AppError).Message)

	likes, err = svc.Unlike(context.Background(), bob.ID, post.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	_, err = svc.Unlike(context.Background(), bob.ID, post.ID)
	require.Error(t, err)
	assert.Equal(t, "Post has not been liked", err.(*models.AppError).Message)
}

func TestCommentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.users)
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := svc.Create(context.Background(), alice.ID, "discuss")
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), bob.ID, post.ID, "first")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].Name)

	comments, err = svc.AddComment(context.Background(), alice.ID, post.ID, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	// Alice cannot delete Bob's comment.
	bobComment := comments[1]
	_, err = svc.DeleteComment(context.Background(), alice.ID, post.ID, bobComment.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, err.(*models.AppError).Code)

	comments, err = svc.DeleteComment(context.Background(), bob.ID, post.ID, bobComment.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = svc.DeleteComment(context.Background(), bob.ID, post.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	posts := NewPostService(env.posts, env.users)
	profiles := NewProfileService(env.profiles)
	accounts := NewAccountService(env.users, env.profiles, env.posts)

	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	_, err := profiles.Upsert(context.Background(), UpsertProfileInput{
		UserID: alice.ID, Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)
	_, err = posts.Create(context.Background(), alice.ID, "soon gone")
	require.NoError(t, err)
	kept, err := posts.Create(context.Background(), bob.ID, "still here")
	require.NoError(t, err)

	require.NoError(t, accounts.DeleteAccount(context.Background(), alice.ID))

	_, err = env.users.GetByID(context.Background(), alice.ID)
	require.Error(t, err)
	_, err = profiles.Get(context.Background(), alice.ID)
	require.Error(t, err)

	all, err := posts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)
}
