package sqlite

import (
	"context"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

type followsRepo struct {
	db querier
}

func (r *followsRepo) CreateFollow(ctx context.Context, f domain.Follow) (bool, error) {
	// The (follower_id, followed_id) primary key absorbs duplicates
	const q = `INSERT OR IGNORE INTO followers (follower_id, followed_id, created_at) VALUES (?, ?, ?);`

	res, err := r.db.ExecContext(ctx, q, f.FollowerID, f.FollowedID, toMicros(f.CreatedAt))
	if err != nil {
		return false, mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *followsRepo) DeleteFollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	const q = `DELETE FROM followers WHERE follower_id = ? AND followed_id = ?;`

	res, err := r.db.ExecContext(ctx, q, followerID, followedID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *followsRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM followers WHERE follower_id = ? AND followed_id = ?);`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, followerID, followedID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID int64) ([]int64, error) {
	const q = `SELECT follower_id FROM followers WHERE followed_id = ? ORDER BY follower_id ASC;`

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, q, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID int64) ([]int64, error) {
	const q = `SELECT followed_id FROM followers WHERE follower_id = ? ORDER BY followed_id ASC;`

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, q, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followsRepo) CountFollowers(ctx context.Context, userID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM followers WHERE followed_id = ?;`

	var n int
	if err := r.db.GetContext(ctx, &n, q, userID); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *followsRepo) CountFollowing(ctx context.Context, userID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM followers WHERE follower_id = ?;`

	var n int
	if err := r.db.GetContext(ctx, &n, q, userID); err != nil {
		return 0, err
	}
	return n, nil
}
