package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, blogsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func writeBadBody(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, blogsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
}

// writeServiceError maps service errors onto API errors. Anything unexpected
// is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ErrorResponse{
			Error:            blogsdk.ErrorCodeValidation,
			ErrorDescription: verr.Reason,
			Details:          map[string]string{verr.Field: verr.Reason},
		})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, blogsdk.ErrorCodeNotFound, "Could not "+action+": not found.")
	case errors.Is(err, service.ErrTokenInvalid):
		writeError(w, http.StatusBadRequest, blogsdk.ErrorCodeInvalidToken, "The password reset link is invalid or has expired.")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, blogsdk.ErrorCodeInvalidCredentials, "Invalid username or password.")
	default:
		slogx.FromContext(r.Context()).Error("failed to "+action, slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, blogsdk.ErrorCodeServerError, "Failed to "+action)
	}
}

// currentUser is the id set by RequireSession.
func currentUser(r *http.Request) int64 {
	id, _ := httpx.UserIDFromContext(r.Context())
	return id
}
