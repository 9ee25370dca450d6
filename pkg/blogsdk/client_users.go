package blogsdk

import (
	"context"
	"net/http"
)

// GetUser returns username's profile.
func (c *Client) GetUser(ctx context.Context, username string) (*ProfileResponse, error) {
	var p ProfileResponse
	if err := c.call(ctx, http.MethodGet, userPath(username, ""), nil, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// Followers lists the users following username.
func (c *Client) Followers(ctx context.Context, username string) (*UserListResponse, error) {
	return c.userList(ctx, userPath(username, "/followers"))
}

// Following lists the users username follows.
func (c *Client) Following(ctx context.Context, username string) (*UserListResponse, error) {
	return c.userList(ctx, userPath(username, "/following"))
}

func (c *Client) userList(ctx context.Context, path string) (*UserListResponse, error) {
	var list UserListResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// Follow makes the logged in user follow username.
func (c *Client) Follow(ctx context.Context, username string) (*FollowResponse, error) {
	return c.follow(ctx, http.MethodPost, username)
}

// Unfollow makes the logged in user stop following username.
func (c *Client) Unfollow(ctx context.Context, username string) (*FollowResponse, error) {
	return c.follow(ctx, http.MethodDelete, username)
}

func (c *Client) follow(ctx context.Context, method, username string) (*FollowResponse, error) {
	var out FollowResponse
	if err := c.call(ctx, method, userPath(username, "/follow"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
