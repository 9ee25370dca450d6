package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// SessionCookieName is the cookie carrying the signed session.
const SessionCookieName = "microblog_session"

// SessionState is what gets persisted, signed and encrypted, in the cookie.
type SessionState struct {
	UserID   int64
	IssuedAt time.Time
}

// Sessions reads and writes session cookies.
type Sessions struct {
	codec *securecookie.SecureCookie

	// Secure marks cookies HTTPS-only.
	Secure bool

	// RememberFor is the lifetime of a "remember me" cookie. Other sessions
	// end with the browser.
	RememberFor time.Duration
}

// NewSessions builds a cookie codec. hashKey authenticates the cookie and
// should be 32 or 64 bytes; blockKey encrypts it and must be 16, 24 or 32
// bytes, or nil to only sign.
func NewSessions(hashKey, blockKey []byte, rememberFor time.Duration) *Sessions {
	codec := securecookie.New(hashKey, blockKey)
	if rememberFor > 0 {
		codec.MaxAge(int(rememberFor.Seconds()))
	}

	return &Sessions{
		codec:       codec,
		RememberFor: rememberFor,
	}
}

// Load returns the session attached to r. Missing or tampered cookies yield
// the zero state.
func (s *Sessions) Load(r *http.Request) SessionState {
	cookie, err := r.Cookie(SessionCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return SessionState{}
	}
	if err != nil {
		slogx.FromContext(r.Context()).Debug("error fetching session cookie", "err", err)
		return SessionState{}
	}

	var state SessionState
	if err := s.codec.Decode(SessionCookieName, cookie.Value, &state); err != nil {
		slogx.FromContext(r.Context()).Debug("error decoding session cookie", "err", err)
		return SessionState{}
	}

	return state
}

// Save writes state to the response. With remember set the cookie outlives
// the browser session.
func (s *Sessions) Save(w http.ResponseWriter, state SessionState, remember bool) error {
	encoded, err := s.codec.Encode(SessionCookieName, state)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    encoded,
		Path:     "/",
		Secure:   s.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember && s.RememberFor > 0 {
		cookie.MaxAge = int(s.RememberFor.Seconds())
		cookie.Expires = time.Now().Add(s.RememberFor)
	}

	http.SetCookie(w, cookie)
	return nil
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Secure:   s.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// RequireSession rejects requests without a valid session with 401. On
// success the user id is placed on the context and onAuth, if set, is called
// before the handler runs.
func RequireSession(sessions *Sessions, onAuth func(ctx context.Context, userID int64)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := sessions.Load(r)
			if state.UserID <= 0 {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "Please log in to access this page.",
				})
				return
			}

			ctx := WithUserID(r.Context(), state.UserID)
			ctx = slogx.WithUser(ctx, state.UserID)

			if onAuth != nil {
				onAuth(ctx, state.UserID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
