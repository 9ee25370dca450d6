package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/mail"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// Mailer queues a message for background delivery and reports whether it was
// accepted. *mail.Dispatcher implements it.
type Mailer interface {
	Submit(msg mail.Message) bool
}

// PasswordResetService runs the forgotten password flow: a token is mailed to
// the account's address and later exchanged for a new password.
type PasswordResetService struct {
	Users  *UserService
	Tokens *ResetTokenService
	Mailer Mailer

	// BaseURL prefixes the reset link, e.g. "https://blog.example.com".
	BaseURL string
	// Sender is the From address of reset emails.
	Sender string
	TTL    time.Duration
}

// Request mails a reset link to email if an account uses it. Unknown
// addresses are accepted silently so callers cannot probe for accounts.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the account
	addr, err := validateEmail(email)
	if err != nil {
		return err
	}
	user, err := s.Users.Store.Users().GetUserByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	// 2. Issue the token and render the message
	token, err := s.Tokens.Issue(user, s.TTL)
	if err != nil {
		return err
	}
	msg, err := mail.ResetPasswordMessage(s.Sender, user.Email, mail.ResetPasswordData{
		Username: user.Username,
		Link:     s.link(token),
		ValidFor: s.TTL.String(),
	})
	if err != nil {
		return err
	}

	// 3. Hand off to the mail workers, never wait on delivery
	if !s.Mailer.Submit(msg) {
		log.Warn("password reset email dropped", slog.Int64("user_id", user.ID))
		return nil
	}

	log.Info("password reset email queued", slog.Int64("user_id", user.ID))
	return nil
}

func (s *PasswordResetService) link(token string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/reset_password/" + token
}

// Check returns the user a reset token belongs to.
func (s *PasswordResetService) Check(ctx context.Context, token string) (domain.User, error) {
	return s.Tokens.Verify(ctx, token)
}

// Complete sets a new password for the token's user. The token cannot be used
// again afterwards.
func (s *PasswordResetService) Complete(ctx context.Context, token, newPassword string) error {
	user, err := s.Tokens.Verify(ctx, token)
	if err != nil {
		return err
	}

	if err := s.Users.SetPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset completed", slog.Int64("user_id", user.ID))
	return nil
}
