package http

import (
	"net/http"

	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
)

// PasswordHandler serves the forgotten password flow.
type PasswordHandler struct {
	PasswordResetService *service.PasswordResetService
}

// HandleRequest handles POST /v1/password/reset-request
//
//	@Summary		Request Password Reset
//	@Description	Mails a reset link if an account uses the address. The response is the same whether or not it does.
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.PasswordResetRequest	true	"Account email"
//	@Success		202		{object}	blogsdk.MessageResponse			"message"
//	@Failure		400		{object}	blogsdk.ErrorResponse			"error, error_description, details"
//	@Failure		429		{object}	blogsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/password/reset-request [post].
func (h *PasswordHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.PasswordResetRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := h.PasswordResetService.Request(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err, "request password reset")
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, blogsdk.MessageResponse{
		Message: "Check your email for the instructions to reset your password",
	})
}

// HandleCheck handles GET /v1/password/reset/{token}
//
//	@Summary		Check Reset Token
//	@Tags			Password
//	@Produce		json
//	@Param			token	path		string								true	"Token from the reset email"
//	@Success		200		{object}	blogsdk.PasswordResetCheckResponse	"account the token belongs to"
//	@Failure		400		{object}	blogsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/password/reset/{token} [get].
func (h *PasswordHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	user, err := h.PasswordResetService.Check(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err, "check reset token")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.PasswordResetCheckResponse{Username: user.Username})
}

// HandleComplete handles POST /v1/password/reset
//
//	@Summary		Reset Password
//	@Description	Sets a new password. The token stops working once the password changes.
//	@Tags			Password
//	@Accept			json
//	@Param			request	body	blogsdk.PasswordResetCompleteRequest	true	"Token and new password"
//	@Success		204
//	@Failure		400	{object}	blogsdk.ErrorResponse	"error, error_description, details"
//	@Router			/v1/password/reset [post].
func (h *PasswordHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.PasswordResetCompleteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := h.PasswordResetService.Complete(r.Context(), req.Token, req.Password); err != nil {
		writeServiceError(w, r, err, "reset password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
