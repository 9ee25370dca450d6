package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

type postRow struct {
	ID             int64  `db:"id"`
	Body           string `db:"body"`
	Timestamp      int64  `db:"timestamp"`
	UserID         int64  `db:"user_id"`
	AuthorUsername string `db:"author_username"`
	AuthorEmail    string `db:"author_email"`
}

func (r postRow) toDomain() domain.PostView {
	return domain.PostView{
		Post: domain.Post{
			ID:        r.ID,
			Body:      r.Body,
			Timestamp: fromMicros(r.Timestamp),
			UserID:    r.UserID,
		},
		AuthorUsername: r.AuthorUsername,
		AuthorEmail:    r.AuthorEmail,
	}
}

type postsRepo struct {
	db querier
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (int64, error) {
	const q = `INSERT INTO posts (body, timestamp, user_id) VALUES (?, ?, ?);`

	res, err := r.db.ExecContext(ctx, q, p.Body, toMicros(p.Timestamp), p.UserID)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", mapConstraint(err))
	}
	return res.LastInsertId()
}

// newestFirst is the base listing every page query narrows down.
func newestFirst() sq.SelectBuilder {
	return sq.Select(
		"p.id",
		"p.body",
		"p.timestamp",
		"p.user_id",
		"u.username AS author_username",
		"u.email AS author_email",
	).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.timestamp DESC", "p.id DESC")
}

func (r *postsRepo) ListFollowedPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error) {
	// A disjunction rather than a union of two joins: a post can only match
	// once, so own posts never double up with followed ones.
	return r.list(ctx, newestFirst().Where(sq.Or{
		sq.Eq{"p.user_id": userID},
		sq.Expr("p.user_id IN (SELECT f.followed_id FROM followers f WHERE f.follower_id = ?)", userID),
	}), limit, offset)
}

func (r *postsRepo) ListPosts(ctx context.Context, limit, offset int) ([]domain.PostView, error) {
	return r.list(ctx, newestFirst(), limit, offset)
}

func (r *postsRepo) ListUserPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error) {
	return r.list(ctx, newestFirst().Where(sq.Eq{"p.user_id": userID}), limit, offset)
}

func (r *postsRepo) list(ctx context.Context, b sq.SelectBuilder, limit, offset int) ([]domain.PostView, error) {
	if limit <= 0 {
		return []domain.PostView{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	q, args, err := b.Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building post query: %w", err)
	}

	var rows []postRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("error selecting posts: %w", err)
	}

	posts := make([]domain.PostView, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toDomain())
	}
	return posts, nil
}
