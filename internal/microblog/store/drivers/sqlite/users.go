package sqlite

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

const userColumns = `id, username, email, password_hash, about_me, last_seen, created_at, updated_at`

type userRow struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AboutMe      string `db:"about_me"`
	LastSeen     int64  `db:"last_seen"`
	CreatedAt    int64  `db:"created_at"`
	UpdatedAt    int64  `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		AboutMe:      r.AboutMe,
		LastSeen:     fromMicros(r.LastSeen),
		CreatedAt:    fromMicros(r.CreatedAt),
		UpdatedAt:    fromMicros(r.UpdatedAt),
	}
}

type usersRepo struct {
	db querier
}

func (r *usersRepo) getOne(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	q := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` = ?;`
	if err := r.db.GetContext(ctx, &row, q, arg); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	q, args, err := sq.Select(userColumns).
		From("users").
		Where(sq.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	const q = `INSERT INTO users (username, email, password_hash, about_me, last_seen, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	res, err := r.db.ExecContext(ctx, q,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.AboutMe,
		toMicros(u.LastSeen),
		toMicros(u.CreatedAt),
		toMicros(u.UpdatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID int64, username, aboutMe string, at time.Time) error {
	const q = `UPDATE users SET username = ?, about_me = ?, updated_at = ? WHERE id = ?;`

	res, err := r.db.ExecContext(ctx, q, username, aboutMe, toMicros(at), userID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string, at time.Time) error {
	const q = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?;`

	res, err := r.db.ExecContext(ctx, q, hash, toMicros(at), userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdateLastSeen(ctx context.Context, userID int64, at time.Time) error {
	const q = `UPDATE users SET last_seen = ? WHERE id = ?;`

	res, err := r.db.ExecContext(ctx, q, toMicros(at), userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
