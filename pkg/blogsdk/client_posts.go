package blogsdk

import (
	"context"
	"net/http"
)

// CreatePost publishes body as the logged in user.
func (c *Client) CreatePost(ctx context.Context, body string) (*PostResponse, error) {
	var post PostResponse
	req := CreatePostRequest{Body: body}
	if err := c.call(ctx, http.MethodPost, "/v1/posts", req, &post, http.StatusCreated); err != nil {
		return nil, err
	}
	return &post, nil
}

// Feed returns the logged in user's timeline.
func (c *Client) Feed(ctx context.Context, opts PageOptions) (*PostPage, error) {
	return c.postPage(ctx, pageQuery("/v1/feed", opts))
}

// Explore returns every user's posts.
func (c *Client) Explore(ctx context.Context, opts PageOptions) (*PostPage, error) {
	return c.postPage(ctx, pageQuery("/v1/explore", opts))
}

// UserPosts returns the posts written by username.
func (c *Client) UserPosts(ctx context.Context, username string, opts PageOptions) (*PostPage, error) {
	return c.postPage(ctx, pageQuery(userPath(username, "/posts"), opts))
}

func (c *Client) postPage(ctx context.Context, path string) (*PostPage, error) {
	var page PostPage
	if err := c.call(ctx, http.MethodGet, path, nil, &page, http.StatusOK); err != nil {
		return nil, err
	}
	return &page, nil
}
