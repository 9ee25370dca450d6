package blogsdk

import (
	"context"
	"net/http"
)

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MeResponse, error) {
	var me MeResponse
	if err := c.call(ctx, http.MethodPost, "/v1/register", req, &me, http.StatusCreated); err != nil {
		return nil, err
	}
	return &me, nil
}

// Login starts a session; the cookie is kept in the client's jar.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*MeResponse, error) {
	var me MeResponse
	if err := c.call(ctx, http.MethodPost, "/v1/login", req, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/v1/logout", nil, nil, http.StatusNoContent)
}

// Me returns the logged in user.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var me MeResponse
	if err := c.call(ctx, http.MethodGet, "/v1/me", nil, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// UpdateMe changes the logged in user's username and about_me.
func (c *Client) UpdateMe(ctx context.Context, req UpdateProfileRequest) (*MeResponse, error) {
	var me MeResponse
	if err := c.call(ctx, http.MethodPut, "/v1/me", req, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// RequestPasswordReset asks for a reset link to be mailed to email. The call
// succeeds whether or not an account uses the address.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*MessageResponse, error) {
	var msg MessageResponse
	req := PasswordResetRequest{Email: email}
	if err := c.call(ctx, http.MethodPost, "/v1/password/reset-request", req, &msg, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CheckPasswordReset reports which account a reset token belongs to.
func (c *Client) CheckPasswordReset(ctx context.Context, token string) (*PasswordResetCheckResponse, error) {
	var out PasswordResetCheckResponse
	if err := c.call(ctx, http.MethodGet, "/v1/password/reset/"+token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a mailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	req := PasswordResetCompleteRequest{Token: token, Password: password}
	return c.call(ctx, http.MethodPost, "/v1/password/reset", req, nil, http.StatusNoContent)
}
