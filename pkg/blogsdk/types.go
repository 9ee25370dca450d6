package blogsdk

import "time"

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Accounts
// ============================================================================

// RegisterRequest creates an account.
type RegisterRequest struct {
	// Username is 1-64 letters, digits, dots, dashes or underscores
	Username string `json:"username"`

	// Email must be unique across accounts, compared case-insensitively
	Email string `json:"email"`

	// Password is at least 8 characters
	Password string `json:"password"`
}

// LoginRequest starts a cookie session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// RememberMe makes the session cookie outlive the browser session
	RememberMe bool `json:"remember_me"`
}

// UpdateProfileRequest replaces the caller's username and about_me.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	AboutMe  string `json:"about_me"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	AboutMe   string    `json:"about_me"`
	Avatar    string    `json:"avatar"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse is the caller's own account.
type MeResponse struct {
	UserResponse
	Email string `json:"email"`
}

// ProfileResponse is a user's profile as seen by the caller.
type ProfileResponse struct {
	User           UserResponse `json:"user"`
	FollowerCount  int          `json:"follower_count"`
	FollowingCount int          `json:"following_count"`

	// Following is true when the caller follows this user
	Following bool `json:"following"`

	// FollowsYou is true when this user follows the caller
	FollowsYou bool `json:"follows_you"`
}

// UserListResponse lists users ordered by id.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FollowResponse reports the relationship after a follow or unfollow.
type FollowResponse struct {
	Username  string `json:"username"`
	Following bool   `json:"following"`

	// Changed is false when the request was a no-op, e.g. following someone
	// already followed
	Changed bool `json:"changed"`
}

// ============================================================================
// Posts
// ============================================================================

// CreatePostRequest publishes a post. Markup is stripped from Body.
type CreatePostRequest struct {
	Body string `json:"body"`
}

// AuthorResponse is the part of a user rendered next to each post.
type AuthorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// PostResponse is a single post.
type PostResponse struct {
	ID        int64          `json:"id"`
	Body      string         `json:"body"`
	Timestamp time.Time      `json:"timestamp"`
	Author    AuthorResponse `json:"author"`
}

// PostPage is one page of a newest-first post listing. NextPage and PrevPage
// are 0 when there is no such page.
type PostPage struct {
	Posts    []PostResponse `json:"posts"`
	Page     int            `json:"page"`
	PerPage  int            `json:"per_page"`
	HasNext  bool           `json:"has_next"`
	HasPrev  bool           `json:"has_prev"`
	NextPage int            `json:"next_page,omitempty"`
	PrevPage int            `json:"prev_page,omitempty"`
}

// PageOptions selects a page. Zero values use the server defaults.
type PageOptions struct {
	Page    int
	PerPage int
}

// ============================================================================
// Password reset
// ============================================================================

// PasswordResetRequest asks for a reset link to be mailed.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetCompleteRequest sets a new password using a mailed token.
type PasswordResetCompleteRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// PasswordResetCheckResponse confirms a reset token is usable.
type PasswordResetCheckResponse struct {
	Username string `json:"username"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
