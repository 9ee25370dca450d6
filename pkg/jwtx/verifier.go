package jwtx

import "errors"

// Signer mints signed tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier checks a token and returns its claims if it is valid for purpose.
type Verifier interface {
	Verify(token, purpose string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrPurpose      = errors.New("jwtx: purpose mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrWeakKey      = errors.New("jwtx: signing key too short")
)
