package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

type postTextRequest struct {
	Text string `json:"text"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postTextRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), currentUserID(c), req.Text)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), currentUserID(c), postID); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id, returning the refreshed
// like list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Like(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Unlike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/:id/comments, returning the
// refreshed comment list.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}

	var req postTextRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.AddComment(c.Context(), currentUserID(c), postID, req.Text)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "Post not found")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "Comment not found")
	if err != nil {
		return nil
	}

	comments, err := s.postService.DeleteComment(c.Context(), currentUserID(c), postID, commentID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(comments)
}
