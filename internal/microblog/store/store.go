package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// memory drivers. Repositories hang off it so that a transaction can hand out
// the same repositories bound to the transaction instead of the pool.
type Store interface {
	Users() Users
	Posts() Posts
	Follows() Follows

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only tx may be used; going through the
	// outer Store can deadlock drivers that serialise writers.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsersByIDs returns the users with the given ids ordered by id.
	// Unknown ids are skipped.
	ListUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error)

	// CreateUser inserts u and returns its assigned id. A duplicate username
	// or email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateProfile sets username and about_me. A username held by another
	// user yields ErrAlreadyExists.
	UpdateProfile(ctx context.Context, userID int64, username, aboutMe string, at time.Time) error

	UpdatePasswordHash(ctx context.Context, userID int64, hash string, at time.Time) error
	UpdateLastSeen(ctx context.Context, userID int64, at time.Time) error
}

// Posts lists are ordered newest first (timestamp desc, then id desc) and
// windowed by limit/offset.
type Posts interface {
	CreatePost(ctx context.Context, p domain.Post) (int64, error)

	// ListFollowedPosts returns posts authored by userID or by anyone userID
	// follows. Each post appears at most once.
	ListFollowedPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error)

	ListPosts(ctx context.Context, limit, offset int) ([]domain.PostView, error)
	ListUserPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error)
}

type Follows interface {
	// CreateFollow inserts the edge if it is absent and reports whether a new
	// edge was written. An existing edge is not an error.
	CreateFollow(ctx context.Context, f domain.Follow) (bool, error)

	// DeleteFollow removes the edge and reports whether it existed.
	DeleteFollow(ctx context.Context, followerID, followedID int64) (bool, error)

	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)

	// ListFollowers returns the ids following userID, ascending.
	ListFollowers(ctx context.Context, userID int64) ([]int64, error)
	// ListFollowing returns the ids userID follows, ascending.
	ListFollowing(ctx context.Context, userID int64) ([]int64, error)

	CountFollowers(ctx context.Context, userID int64) (int, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
}
