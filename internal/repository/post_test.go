package repository

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
)

func seedPost(t *testing.T, repo PostRepository, userID uint, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID: userID,
		Name:   "Ada",
		Avatar: "https://www.gravatar.com/avatar/abc",
		Text:   text,
	}
	assert.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	post := seedPost(t, posts, 1, "hello world")

	got, err := posts.GetByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hello world", got.Text)
	assert.Equal(t, "Ada", got.Name)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)
}

func TestPostRepository_GetByID_Missing(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	_, err := posts.GetByID(context.Background(), 42)
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	seedPost(t, posts, 1, "first")
	seedPost(t, posts, 1, "second")
	seedPost(t, posts, 2, "third")

	all, err := posts.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Text)
	assert.Equal(t, "first", all[2].Text)
}

func TestPostRepository_Likes(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	post := seedPost(t, posts, 1, "likeable")

	assert.NoError(t, posts.AddLike(ctx, &models.Like{PostID: post.ID, UserID: 2}))

	err := posts.AddLike(ctx, &models.Like{PostID: post.ID, UserID: 2})
	appErr, ok := err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, "Post already liked", appErr.Message)

	got, err := posts.GetByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Likes, 1)

	assert.NoError(t, posts.RemoveLike(ctx, post.ID, 2))

	err = posts.RemoveLike(ctx, post.ID, 2)
	appErr, ok = err.(*models.AppError)
	assert.True(t, ok)
	assert.Equal(t, "Post has not been liked", appErr.Message)
}

func TestPostRepository_Comments(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	post := seedPost(t, posts, 1, "discussable")

	first := &models.Comment{PostID: post.ID, UserID: 2, Name: "Grace", Text: "nice"}
	second := &models.Comment{PostID: post.ID, UserID: 3, Name: "Alan", Text: "agreed"}
	assert.NoError(t, posts.AddComment(ctx, first))
	assert.NoError(t, posts.AddComment(ctx, second))

	got, err := posts.GetByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Comments, 2)
	assert.Equal(t, "agreed", got.Comments[0].Text)

	assert.NoError(t, posts.DeleteComment(ctx, post.ID, first.ID))
	err = posts.DeleteComment(ctx, post.ID, first.ID)
	assert.Error(t, err)

	// A comment cannot be deleted through a different post id.
	err = posts.DeleteComment(ctx, post.ID+1, second.ID)
	assert.Error(t, err)
}

func TestPostRepository_DeleteByUserID(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	seedPost(t, posts, 1, "mine")
	seedPost(t, posts, 1, "also mine")
	other := seedPost(t, posts, 2, "someone else's")

	assert.NoError(t, posts.DeleteByUserID(ctx, 1))

	all, err := posts.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].ID)
}
