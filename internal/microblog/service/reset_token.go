package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/jwtx"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// ResetTokenService issues and verifies password reset tokens. A token is
// bound to the user's password hash at issue time, so it stops verifying as
// soon as the password changes.
type ResetTokenService struct {
	Codec *jwtx.HS256
	Store store.Store
}

// Issue returns a token that lets user reset their password for ttl.
func (s *ResetTokenService) Issue(user domain.User, ttl time.Duration) (string, error) {
	claims := s.Codec.NewClaims(strconv.FormatInt(user.ID, 10), jwtx.PurposeResetPassword, ttl)
	claims.Stamp = passwordStamp(user.PasswordHash)

	token, err := s.Codec.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return token, nil
}

// Verify returns the user id a token was issued for. Any defect in the token
// yields ErrTokenInvalid; the cause is only logged. Errors reaching the store
// are returned as they are.
func (s *ResetTokenService) Verify(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	reject := func(reason string, err error) (domain.User, error) {
		attrs := []any{slog.String("reason", reason)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		log.Debug("reset token rejected", attrs...)
		return domain.User{}, ErrTokenInvalid
	}

	claims, err := s.Codec.Verify(token, jwtx.PurposeResetPassword)
	if err != nil {
		return reject("claims", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return reject("subject", err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return reject("unknown user", nil)
		}
		return domain.User{}, err
	}

	if claims.Stamp != passwordStamp(user.PasswordHash) {
		return reject("password changed", nil)
	}

	return user, nil
}

func passwordStamp(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}
