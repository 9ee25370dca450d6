// Package memory is a process-local store.Store used for development and
// tests. Data is lost when the process exits.
package memory

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"sync"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/graph"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

type state struct {
	users   map[int64]domain.User
	posts   []domain.Post
	follows *graph.EdgeSet

	nextUserID int64
	nextPostID int64
}

func newState() *state {
	return &state{
		users:      make(map[int64]domain.User),
		follows:    graph.New(),
		nextUserID: 1,
		nextPostID: 1,
	}
}

func (s *state) clone() *state {
	return &state{
		users:      maps.Clone(s.users),
		posts:      slices.Clone(s.posts),
		follows:    s.follows.Clone(),
		nextUserID: s.nextUserID,
		nextPostID: s.nextPostID,
	}
}

// access runs reads and writes against a state. The root Store locks around
// each call, a transaction works on a private copy.
type access interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// Store keeps all data in maps guarded by mu. Writers, including whole
// transactions, are serialised by writeMu; a transaction mutates a copy of
// the state which replaces the live one on commit.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	st      *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

func (s *Store) Users() store.Users     { return &usersRepo{db: s} }
func (s *Store) Posts() store.Posts     { return &postsRepo{db: s} }
func (s *Store) Follows() store.Follows { return &followsRepo{db: s} }

// ApplyMigrations is a no-op, there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error                   { return nil }
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.writeMu.Lock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	return &txStore{parent: s, st: snapshot}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type txStore struct {
	parent *Store
	st     *state
	done   bool
}

func (t *txStore) read(fn func(st *state) error) error {
	if t.done {
		return sql.ErrTxDone
	}
	return fn(t.st)
}

func (t *txStore) write(fn func(st *state) error) error {
	return t.read(fn)
}

func (t *txStore) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true

	t.parent.mu.Lock()
	t.parent.st = t.st
	t.parent.mu.Unlock()

	t.parent.writeMu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.parent.writeMu.Unlock()
	return nil
}

func (t *txStore) Users() store.Users     { return &usersRepo{db: t} }
func (t *txStore) Posts() store.Posts     { return &postsRepo{db: t} }
func (t *txStore) Follows() store.Follows { return &followsRepo{db: t} }

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}
