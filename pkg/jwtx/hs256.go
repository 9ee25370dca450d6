package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeySize is the shortest HMAC key HS256 accepts, in bytes.
const MinKeySize = 32

// HS256 signs and verifies tokens with a shared secret. It is both a Signer
// and a Verifier.
type HS256 struct {
	key    []byte
	issuer string

	// Now is the clock used for issuing and verifying. Defaults to time.Now.
	Now func() time.Time
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// NewHS256 returns an HS256 keyed with key. Tokens are stamped with, and must
// carry, issuer.
func NewHS256(key []byte, issuer string) (*HS256, error) {
	if len(key) < MinKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrWeakKey, len(key), MinKeySize)
	}
	return &HS256{key: key, issuer: issuer, Now: time.Now}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (h *HS256) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

// Sign serialises claims as a compact JWS.
func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.key)
}

// NewClaims returns claims stamped with h's issuer and clock, for callers
// that add fields before signing.
func (h *HS256) NewClaims(subject, purpose string, ttl time.Duration) Claims {
	return NewClaims(subject, purpose, h.issuer, ttl, h.now())
}

// Issue mints a token for subject limited to purpose, valid for ttl.
func (h *HS256) Issue(subject, purpose string, ttl time.Duration) (string, error) {
	return h.Sign(h.NewClaims(subject, purpose, ttl))
}

// Verify returns the claims of token if it was signed by h, has not expired
// and was issued for purpose. Errors wrap one of the package sentinels.
func (h *HS256) Verify(token, purpose string) (Claims, error) {
	now := h.now()

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	// The parser grants exp == now; single-use links must not.
	if err := claims.ValidateExpiry(now); err != nil {
		return Claims{}, err
	}

	if err := claims.ValidatePurpose(purpose); err != nil {
		return Claims{}, err
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidClaim)
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
