package service

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	goaway "github.com/TwiN/go-away"
	"github.com/microcosm-cc/bluemonday"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

const (
	MaxUsernameLength = 64
	MaxEmailLength    = 120
	MinPasswordLength = 8
	MaxPasswordLength = 1024
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

	// bluemonday policies are safe for concurrent use once built.
	stripPolicy = bluemonday.StrictPolicy()
)

func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return "", invalid("username", "This field is required.")
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		return "", invalid("username", "Username is too long.")
	case !usernamePattern.MatchString(username):
		return "", invalid("username", "Usernames may only contain letters, digits, dots, dashes and underscores.")
	case goaway.IsProfane(username):
		return "", invalid("username", "Please use a different username.")
	}
	return username, nil
}

// validateEmail returns the address lower-cased, without any display name.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalid("email", "This field is required.")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "Invalid email address.")
	}
	email = strings.ToLower(addr.Address)
	if len(email) > MaxEmailLength {
		return "", invalid("email", "Email address is too long.")
	}
	return email, nil
}

func validatePassword(password string) error {
	switch {
	case len(password) < MinPasswordLength:
		return invalid("password", "Password must be at least 8 characters.")
	case len(password) > MaxPasswordLength:
		return invalid("password", "Password is too long.")
	}
	return nil
}

// sanitizeText strips markup and surrounding space and enforces the post
// length limit. Entities are decoded so "&" stays "&" and is escaped once on
// output.
func sanitizeText(field, s string, required bool) (string, error) {
	s = strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
	if required && s == "" {
		return "", invalid(field, "This field is required.")
	}
	if utf8.RuneCountInString(s) > domain.MaxPostLength {
		return "", invalid(field, "Must be at most 140 characters.")
	}
	return s, nil
}
