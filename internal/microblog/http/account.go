package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// AccountHandler serves registration, login and the caller's own account.
type AccountHandler struct {
	UserService *service.UserService
	Sessions    *httpx.Sessions
}

// HandleRegister handles POST /v1/register
//
//	@Summary		Register
//	@Description	Creates an account. Usernames and emails must be unique; the call does not log in.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	blogsdk.MeResponse		"created account"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"error, error_description, details"
//	@Failure		429		{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/register [post].
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, meResponse(user))
}

// HandleLogin handles POST /v1/login
//
//	@Summary		Log In
//	@Description	Verifies credentials and sets the session cookie. With remember_me the cookie persists across browser restarts.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	blogsdk.MeResponse		"logged in account"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "log in")
		return
	}

	state := httpx.SessionState{UserID: user.ID, IssuedAt: time.Now().UTC()}
	if err := h.Sessions.Save(w, state, req.RememberMe); err != nil {
		writeServiceError(w, r, err, "start session")
		return
	}

	if err := h.UserService.Touch(ctx, user.ID); err != nil {
		log.Warn("failed to update last seen", slog.String("error", err.Error()))
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID), slog.Bool("remember_me", req.RememberMe))
	httpx.WriteJSON(w, http.StatusOK, meResponse(user))
}

// HandleLogout handles POST /v1/logout
//
//	@Summary		Log Out
//	@Description	Clears the session cookie. Succeeds without a session.
//	@Tags			Account
//	@Success		204
//	@Router			/v1/logout [post].
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /v1/me
//
//	@Summary		Current Account
//	@Tags			Account
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	blogsdk.MeResponse		"account"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUserByID(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, r, err, "load account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, meResponse(user))
}

// HandleUpdate handles PUT /v1/me
//
//	@Summary		Edit Profile
//	@Description	Replaces username and about_me. Markup is stripped from about_me, which may hold at most 140 characters.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		blogsdk.UpdateProfileRequest	true	"New profile"
//	@Success		200		{object}	blogsdk.MeResponse				"updated account"
//	@Failure		400		{object}	blogsdk.ErrorResponse			"error, error_description, details"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/me [put].
func (h *AccountHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), currentUser(r), req.Username, req.AboutMe)
	if err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, meResponse(user))
}
