package http

import (
	"net/http"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
)

// PostsHandler serves publishing and the timelines.
type PostsHandler struct {
	UserService *service.UserService
	PostService *service.PostService
	FeedService *service.FeedService
}

// HandleCreate handles POST /v1/posts
//
//	@Summary		Publish Post
//	@Description	Publishes a post as the caller. Markup is stripped; the text must be 1-140 characters.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		blogsdk.CreatePostRequest	true	"Post body"
//	@Success		201		{object}	blogsdk.PostResponse		"created post"
//	@Failure		400		{object}	blogsdk.ErrorResponse		"error, error_description, details"
//	@Failure		401		{object}	blogsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req blogsdk.CreatePostRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	author, err := h.UserService.GetUserByID(ctx, currentUser(r))
	if err != nil {
		writeServiceError(w, r, err, "create post")
		return
	}

	post, err := h.PostService.Create(ctx, author.ID, req.Body)
	if err != nil {
		writeServiceError(w, r, err, "create post")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, postResponse(domain.PostView{
		Post:           post,
		AuthorUsername: author.Username,
		AuthorEmail:    author.Email,
	}))
}

// HandleFeed handles GET /v1/feed
//
//	@Summary		Timeline
//	@Description	The caller's posts and the posts of everyone they follow, newest first.
//	@Tags			Posts
//	@Produce		json
//	@Security		SessionCookie
//	@Param			page		query		int						false	"Page number, from 1"
//	@Param			per_page	query		int						false	"Page size, at most 100"
//	@Success		200			{object}	blogsdk.PostPage		"posts"
//	@Failure		400			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/feed [get].
func (h *PostsHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	req, ok := pageFromQuery(w, r)
	if !ok {
		return
	}

	page, err := h.FeedService.FollowedPosts(r.Context(), currentUser(r), req)
	if err != nil {
		writeServiceError(w, r, err, "load feed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postPage(page))
}

// HandleExplore handles GET /v1/explore
//
//	@Summary		Explore
//	@Description	Every user's posts, newest first.
//	@Tags			Posts
//	@Produce		json
//	@Security		SessionCookie
//	@Param			page		query		int						false	"Page number, from 1"
//	@Param			per_page	query		int						false	"Page size, at most 100"
//	@Success		200			{object}	blogsdk.PostPage		"posts"
//	@Failure		400			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/explore [get].
func (h *PostsHandler) HandleExplore(w http.ResponseWriter, r *http.Request) {
	req, ok := pageFromQuery(w, r)
	if !ok {
		return
	}

	page, err := h.FeedService.Explore(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "load posts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postPage(page))
}

// pageFromQuery writes a 400 and returns false for unusable paging input.
func pageFromQuery(w http.ResponseWriter, r *http.Request) (domain.PageRequest, bool) {
	req, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, blogsdk.ErrorCodeInvalidRequest, err.Error())
		return domain.PageRequest{}, false
	}
	return req, true
}
