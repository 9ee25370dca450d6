package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/cryptox"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// lastSeenCacheSize bounds how many users' last write times Touch remembers.
const lastSeenCacheSize = 4096

type UserService struct {
	Store store.Store
	Clock Clock

	// LastSeenInterval is the minimum gap between two last_seen writes for
	// the same user. Zero writes on every Touch.
	LastSeenInterval time.Duration

	seenOnce sync.Once
	seen     *lru.Cache[int64, time.Time]
}

func NewUserService(st store.Store, lastSeenInterval time.Duration) *UserService {
	return &UserService{Store: st, LastSeenInterval: lastSeenInterval}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register validates in and creates the user. Taken usernames and emails are
// reported as validation errors on the matching field.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	username, err := validateUsername(in.Username)
	if err != nil {
		return domain.User{}, err
	}
	email, err := validateEmail(in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.User{}, err
	}

	// 2. Hash outside the transaction, argon2 is slow
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.Clock.now()
	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		LastSeen:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 3. Check uniqueness and insert atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return invalid("username", "Please use a different username.")
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return invalid("email", "Please use a different email address.")
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		id, err := tx.Users().CreateUser(ctx, user)
		if errors.Is(err, store.ErrAlreadyExists) {
			return invalid("username", "Please use a different username.")
		}
		user.ID = id
		return err
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			log.Warn("register: rejected", slog.String("username", username), slog.String("error", err.Error()))
		}
		return domain.User{}, err
	}

	log.Info("user registered", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// Authenticate returns the user when password matches. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login: unknown username", slog.String("username", username))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login: wrong password", slog.Int64("user_id", user.ID))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	return u, notFound(err)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	return u, notFound(err)
}

// Profile returns username's profile as seen by viewerID. A viewerID of 0 is
// an anonymous viewer.
func (s *UserService) Profile(ctx context.Context, viewerID int64, username string) (domain.Profile, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{User: user}

	follows := s.Store.Follows()
	if p.FollowerCount, err = follows.CountFollowers(ctx, user.ID); err != nil {
		return domain.Profile{}, err
	}
	if p.FollowingCount, err = follows.CountFollowing(ctx, user.ID); err != nil {
		return domain.Profile{}, err
	}

	if viewerID > 0 && viewerID != user.ID {
		if p.ViewerFollows, err = follows.IsFollowing(ctx, viewerID, user.ID); err != nil {
			return domain.Profile{}, err
		}
		if p.FollowsViewer, err = follows.IsFollowing(ctx, user.ID, viewerID); err != nil {
			return domain.Profile{}, err
		}
	}

	return p, nil
}

// UpdateProfile changes userID's username and about_me. Keeping the current
// username is always allowed.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, aboutMe string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	username, err := validateUsername(username)
	if err != nil {
		return domain.User{}, err
	}
	aboutMe, err = sanitizeText("about_me", aboutMe, false)
	if err != nil {
		return domain.User{}, err
	}

	// 2. Check the new username is free and write
	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return notFound(err)
		}

		if username != current.Username {
			if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
				return invalid("username", "Please use a different username.")
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		now := s.Clock.now()
		if err := tx.Users().UpdateProfile(ctx, userID, username, aboutMe, now); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return invalid("username", "Please use a different username.")
			}
			return notFound(err)
		}

		user = current
		user.Username = username
		user.AboutMe = aboutMe
		user.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("profile updated", slog.Int64("user_id", userID))
	return user, nil
}

// Touch records that userID was active. Writes are throttled to one per
// LastSeenInterval per user.
func (s *UserService) Touch(ctx context.Context, userID int64) error {
	now := s.Clock.now()

	if s.LastSeenInterval > 0 {
		s.seenOnce.Do(func() {
			s.seen, _ = lru.New[int64, time.Time](lastSeenCacheSize)
		})
		if last, ok := s.seen.Get(userID); ok && now.Sub(last) < s.LastSeenInterval {
			return nil
		}
	}

	if err := s.Store.Users().UpdateLastSeen(ctx, userID, now); err != nil {
		return notFound(err)
	}

	if s.seen != nil {
		s.seen.Add(userID, now)
	}
	return nil
}

// SetPassword replaces userID's password.
func (s *UserService) SetPassword(ctx context.Context, userID int64, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, s.Clock.now()); err != nil {
		return notFound(err)
	}

	slogx.FromContext(ctx).Info("password changed", slog.Int64("user_id", userID))
	return nil
}
