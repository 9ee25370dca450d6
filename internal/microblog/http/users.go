package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
)

// UsersHandler serves profiles and the follow relation. Every route is keyed
// by the {username} path parameter.
type UsersHandler struct {
	UserService   *service.UserService
	FollowService *service.FollowService
	FeedService   *service.FeedService
}

// HandleGet handles GET /v1/users/{username}
//
//	@Summary		User Profile
//	@Description	Profile with follower counts and the relationship to the caller.
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string					true	"Username"
//	@Success		200			{object}	blogsdk.ProfileResponse	"profile"
//	@Failure		401			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{username} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.UserService.Profile(r.Context(), currentUser(r), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "load profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResponse(p))
}

// HandlePosts handles GET /v1/users/{username}/posts
//
//	@Summary		User Posts
//	@Description	Posts written by the user, newest first.
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string					true	"Username"
//	@Param			page		query		int						false	"Page number, from 1"
//	@Param			per_page	query		int						false	"Page size, at most 100"
//	@Success		200			{object}	blogsdk.PostPage		"posts"
//	@Failure		400			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{username}/posts [get].
func (h *UsersHandler) HandlePosts(w http.ResponseWriter, r *http.Request) {
	req, ok := pageFromQuery(w, r)
	if !ok {
		return
	}

	page, err := h.FeedService.UserPosts(r.Context(), r.PathValue("username"), req)
	if err != nil {
		writeServiceError(w, r, err, "load posts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postPage(page))
}

// HandleFollowers handles GET /v1/users/{username}/followers
//
//	@Summary		Followers
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string						true	"Username"
//	@Success		200			{object}	blogsdk.UserListResponse	"users ordered by id"
//	@Failure		404			{object}	blogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users/{username}/followers [get].
func (h *UsersHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.FollowService.FollowersOf)
}

// HandleFollowing handles GET /v1/users/{username}/following
//
//	@Summary		Following
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string						true	"Username"
//	@Success		200			{object}	blogsdk.UserListResponse	"users ordered by id"
//	@Failure		404			{object}	blogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users/{username}/following [get].
func (h *UsersHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.FollowService.FollowingOf)
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, username string) ([]domain.User, error)) {
	users, err := fetch(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "list users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userList(users))
}

// HandleFollow handles POST /v1/users/{username}/follow
//
//	@Summary		Follow
//	@Description	Follows the user. Following someone already followed succeeds with changed=false.
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string					true	"Username"
//	@Success		200			{object}	blogsdk.FollowResponse	"relationship"
//	@Failure		400			{object}	blogsdk.ErrorResponse	"error, error_description, details"
//	@Failure		404			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{username}/follow [post].
func (h *UsersHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	target, created, err := h.FollowService.FollowByUsername(r.Context(), currentUser(r), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "follow user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.FollowResponse{
		Username:  target.Username,
		Following: true,
		Changed:   created,
	})
}

// HandleUnfollow handles DELETE /v1/users/{username}/follow
//
//	@Summary		Unfollow
//	@Description	Stops following the user. Unfollowing someone not followed succeeds with changed=false.
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Param			username	path		string					true	"Username"
//	@Success		200			{object}	blogsdk.FollowResponse	"relationship"
//	@Failure		400			{object}	blogsdk.ErrorResponse	"error, error_description, details"
//	@Failure		404			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{username}/follow [delete].
func (h *UsersHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	target, removed, err := h.FollowService.UnfollowByUsername(r.Context(), currentUser(r), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "unfollow user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.FollowResponse{
		Username:  target.Username,
		Following: false,
		Changed:   removed,
	})
}
