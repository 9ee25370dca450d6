package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/jmoiron/sqlx"
)

type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op, the outer Store owns the connection pool.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users     { return &usersRepo{db: t.tx} }
func (t *txStore) Posts() store.Posts     { return &postsRepo{db: t.tx} }
func (t *txStore) Follows() store.Follows { return &followsRepo{db: t.tx} }

// Migrations run against the pool before any transaction is opened.
func (t *txStore) ApplyMigrations() error { return nil }
