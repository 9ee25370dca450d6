package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/microblog/pkg/idx"
)

// Token purposes. A token minted for one purpose never verifies for another.
const (
	PurposeResetPassword = "reset_password"
)

// Claims are the claims of a single-purpose token. The subject carries the
// user id in decimal.
type Claims struct {
	jwt.RegisteredClaims

	// Purpose names what the token may be used for, e.g. "reset_password".
	Purpose string `json:"purpose"`

	// Stamp is an opaque digest of subject state chosen by the issuer. A
	// verifier that recomputes it can refuse a token once that state changed.
	Stamp string `json:"stamp,omitempty"`
}

// NewClaims builds claims for subject valid from now until now+ttl.
func NewClaims(subject, purpose, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.NewAt(now).String(),
		},
		Purpose: purpose,
	}
}

// ValidateIssuer checks the issuer. An empty expectation accepts any issuer.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidatePurpose checks the purpose claim matches exactly.
func (c *Claims) ValidatePurpose(expected string) error {
	if c.Purpose != expected {
		return ErrPurpose
	}
	return nil
}

// ValidateExpiry rejects tokens at or past their expiry. A token with no
// expiry is rejected as well.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
