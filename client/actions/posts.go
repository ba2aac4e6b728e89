package actions

import (
	"context"
	"fmt"
	"net/http"

	"devconnect/client/store"
)

// GetPosts fetches the feed.
func (c *Client) GetPosts(ctx context.Context) error {
	var posts []store.Post
	apiErr, err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.PostsLoadedEvent{Posts: posts})
	return nil
}

// GetPost fetches a single post with likes and comments.
func (c *Client) GetPost(ctx context.Context, id uint) error {
	var post store.Post
	apiErr, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}
	c.store.Dispatch(store.PostLoadedEvent{Post: post})
	return nil
}

// AddPost publishes a post to the feed.
func (c *Client) AddPost(ctx context.Context, text string) error {
	var post store.Post
	apiErr, err := c.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, &post)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.PostAddedEvent{Post: post})
	c.SetAlert("Post Created", "success")
	return nil
}

// DeletePost removes the caller's own post.
func (c *Client) DeletePost(ctx context.Context, id uint) error {
	apiErr, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.PostDeletedEvent{PostID: id})
	c.SetAlert("Post Removed", "success")
	return nil
}

// AddLike records a like and patches only the matching post's like
// list.
func (c *Client) AddLike(ctx context.Context, id uint) error {
	return c.updateLikes(ctx, fmt.Sprintf("/api/posts/like/%d", id), id)
}

// RemoveLike withdraws a like.
func (c *Client) RemoveLike(ctx context.Context, id uint) error {
	return c.updateLikes(ctx, fmt.Sprintf("/api/posts/unlike/%d", id), id)
}

func (c *Client) updateLikes(ctx context.Context, path string, postID uint) error {
	var likes []store.Like
	apiErr, err := c.do(ctx, http.MethodPut, path, nil, &likes)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.LikesUpdatedEvent{PostID: postID, Likes: likes})
	return nil
}

// AddComment posts a comment and replaces the loaded post's comment
// list with the refreshed one.
func (c *Client) AddComment(ctx context.Context, postID uint, text string) error {
	var comments []store.Comment
	apiErr, err := c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", postID), map[string]string{"text": text}, &comments)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.fanOutFieldErrors(apiErr)
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.CommentsUpdatedEvent{PostID: postID, Comments: comments})
	c.SetAlert("Comment Added", "success")
	return nil
}

// DeleteComment removes the caller's own comment.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID uint) error {
	var comments []store.Comment
	apiErr, err := c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d/comments/%d", postID, commentID), nil, &comments)
	if err != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: err.Error()})
		return err
	}
	if apiErr != nil {
		c.store.Dispatch(store.PostErrorEvent{Message: apiErr.Error(), Status: apiErr.Status})
		return apiErr
	}

	c.store.Dispatch(store.CommentsUpdatedEvent{PostID: postID, Comments: comments})
	c.SetAlert("Comment Removed", "success")
	return nil
}
