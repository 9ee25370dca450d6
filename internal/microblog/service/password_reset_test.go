package service

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/internal/microblog/mail"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

type fakeMailer struct {
	mu     sync.Mutex
	reject bool
	sent   []mail.Message
}

func (m *fakeMailer) Submit(msg mail.Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reject {
		return false
	}
	m.sent = append(m.sent, msg)
	return true
}

func newPasswordReset(t *testing.T, st store.Store, mailer Mailer) (*PasswordResetService, *UserService) {
	t.Helper()
	now := epoch
	users := &UserService{Store: st}
	return &PasswordResetService{
		Users:   users,
		Tokens:  newTokens(t, st, &now),
		Mailer:  mailer,
		BaseURL: "https://blog.example.com/",
		Sender:  "noreply@example.com",
		TTL:     30 * time.Minute,
	}, users
}

const linkPrefix = "https://blog.example.com/reset_password/"

// tokenFrom extracts the reset token from the plain text body.
func tokenFrom(t *testing.T, msg mail.Message) string {
	t.Helper()
	for _, line := range strings.Split(msg.TextBody, "\n") {
		if token, ok := strings.CutPrefix(strings.TrimSpace(line), linkPrefix); ok {
			return token
		}
	}
	t.Fatalf("no reset link in %q", msg.TextBody)
	return ""
}

func TestPasswordResetFlow(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		mailer := &fakeMailer{}
		resets, users := newPasswordReset(t, st, mailer)
		alice := mustRegister(t, users, "alice", "password1")

		require.NoError(t, resets.Request(ctx, "Alice@Example.com"))
		require.Len(t, mailer.sent, 1)

		msg := mailer.sent[0]
		require.Equal(t, []string{"alice@example.com"}, msg.To)
		require.Equal(t, "noreply@example.com", msg.From)
		require.Equal(t, mail.ResetPasswordSubject, msg.Subject)
		require.Contains(t, msg.TextBody, "30m0s")

		token := tokenFrom(t, msg)

		u, err := resets.Check(ctx, token)
		require.NoError(t, err)
		require.Equal(t, alice.ID, u.ID)

		// A rejected password leaves the token usable
		requireValidation(t, resets.Complete(ctx, token, "short"), "password")

		require.NoError(t, resets.Complete(ctx, token, "password2"))
		_, err = users.Authenticate(ctx, "alice", "password2")
		require.NoError(t, err)

		require.ErrorIs(t, resets.Complete(ctx, token, "password3"), ErrTokenInvalid)
		_, err = resets.Check(ctx, token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		mailer := &fakeMailer{}
		resets, _ := newPasswordReset(t, st, mailer)
		mustUser(t, st, "alice")

		require.NoError(t, resets.Request(t.Context(), "nobody@example.com"))
		require.Empty(t, mailer.sent)

		requireValidation(t, resets.Request(t.Context(), "not an email"), "email")
	})
}

func TestPasswordResetDroppedMail(t *testing.T) {
	mailer := &fakeMailer{reject: true}
	st := memoryStore()
	resets, _ := newPasswordReset(t, st, mailer)
	mustUser(t, st, "alice")

	// A full mail queue is not the caller's problem
	require.NoError(t, resets.Request(t.Context(), "alice@example.com"))
	require.Empty(t, mailer.sent)
}

func TestPasswordResetRejectsBadTokens(t *testing.T) {
	resets, _ := newPasswordReset(t, memoryStore(), &fakeMailer{})

	_, err := resets.Check(t.Context(), "garbage")
	require.ErrorIs(t, err, ErrTokenInvalid)
	require.ErrorIs(t, resets.Complete(t.Context(), "garbage", "password1"), ErrTokenInvalid)
}
