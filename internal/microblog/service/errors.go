package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

var (
	ErrNotFound           = errors.New("not_found")
	ErrValidation         = errors.New("validation_failed")
	ErrTokenInvalid       = errors.New("invalid_token")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// ValidationError names the offending input field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var ErrCannotFollowSelf = &ValidationError{Field: "username", Reason: "You cannot follow yourself."}

// notFound translates store.ErrNotFound; other errors pass through.
func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
