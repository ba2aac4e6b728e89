package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

// PostService owns the feed: posts, likes and comments, with ownership
// checks on every mutation.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

const maxPostLen = 50000

// Create snapshots the author's name/avatar from the user record at
// creation time; later renames do not touch existing posts.
func (s *PostService) Create(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "text", Msg: "Text is required"},
		})
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Text too long")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: userID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	return s.postRepo.GetByID(ctx, post.ID)
}

// List returns all posts newest-first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// Get returns a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records the caller's like, rejecting a duplicate, and returns
// the refreshed like list.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil, models.NewValidationError("Post already liked")
		}
	}

	if err := s.postRepo.AddLike(ctx, &models.Like{PostID: postID, UserID: userID}); err != nil {
		return nil, err
	}

	post, err = s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the caller's like and returns the refreshed like list.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.RemoveLike(ctx, postID, userID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment carrying the caller's author snapshot
// and returns the refreshed comment list.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "text", Msg: "Text is required"},
		})
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes a comment by id. Only the comment's author may
// delete it.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var target *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, models.NewNotFoundError("Comment not found")
	}
	if target.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	post, err = s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}
