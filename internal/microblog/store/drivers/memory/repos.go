package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

type usersRepo struct {
	db access
}

func (r *usersRepo) find(match func(u domain.User) bool) (domain.User, error) {
	var found domain.User
	err := r.db.read(func(st *state) error {
		for _, u := range st.users {
			if match(u) {
				found = u
				return nil
			}
		}
		return store.ErrNotFound
	})
	return found, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var found domain.User
	err := r.db.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return store.ErrNotFound
		}
		found = u
		return nil
	})
	return found, err
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.read(func(st *state) error {
		for _, id := range ids {
			if u, ok := st.users[id]; ok {
				users = append(users, u)
			}
		}
		return nil
	})
	slices.SortFunc(users, func(a, b domain.User) int { return cmp.Compare(a.ID, b.ID) })
	users = slices.CompactFunc(users, func(a, b domain.User) bool { return a.ID == b.ID })
	return users, err
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	var id int64
	err := r.db.write(func(st *state) error {
		for _, existing := range st.users {
			if existing.Username == u.Username || existing.Email == u.Email {
				return store.ErrAlreadyExists
			}
		}
		id = st.nextUserID
		st.nextUserID++
		u.ID = id
		st.users[id] = u
		return nil
	})
	return id, err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID int64, username, aboutMe string, at time.Time) error {
	return r.db.write(func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return store.ErrNotFound
		}
		for id, existing := range st.users {
			if id != userID && existing.Username == username {
				return store.ErrAlreadyExists
			}
		}
		u.Username = username
		u.AboutMe = aboutMe
		u.UpdatedAt = at
		st.users[userID] = u
		return nil
	})
}

func (r *usersRepo) update(userID int64, fn func(u *domain.User)) error {
	return r.db.write(func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return store.ErrNotFound
		}
		fn(&u)
		st.users[userID] = u
		return nil
	})
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string, at time.Time) error {
	return r.update(userID, func(u *domain.User) {
		u.PasswordHash = hash
		u.UpdatedAt = at
	})
}

func (r *usersRepo) UpdateLastSeen(ctx context.Context, userID int64, at time.Time) error {
	return r.update(userID, func(u *domain.User) { u.LastSeen = at })
}

type postsRepo struct {
	db access
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (int64, error) {
	var id int64
	err := r.db.write(func(st *state) error {
		if _, ok := st.users[p.UserID]; !ok {
			return store.ErrNotFound
		}
		id = st.nextPostID
		st.nextPostID++
		p.ID = id
		st.posts = append(st.posts, p)
		return nil
	})
	return id, err
}

func (r *postsRepo) ListFollowedPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error) {
	return r.list(limit, offset, func(st *state, p domain.Post) bool {
		return p.UserID == userID || st.follows.Has(userID, p.UserID)
	})
}

func (r *postsRepo) ListPosts(ctx context.Context, limit, offset int) ([]domain.PostView, error) {
	return r.list(limit, offset, func(*state, domain.Post) bool { return true })
}

func (r *postsRepo) ListUserPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.PostView, error) {
	return r.list(limit, offset, func(_ *state, p domain.Post) bool { return p.UserID == userID })
}

func (r *postsRepo) list(limit, offset int, keep func(st *state, p domain.Post) bool) ([]domain.PostView, error) {
	views := []domain.PostView{}
	if limit <= 0 {
		return views, nil
	}
	offset = max(offset, 0)

	err := r.db.read(func(st *state) error {
		matched := make([]domain.Post, 0, len(st.posts))
		for _, p := range st.posts {
			if keep(st, p) {
				matched = append(matched, p)
			}
		}
		slices.SortFunc(matched, newestFirst)

		if offset >= len(matched) {
			return nil
		}
		matched = matched[offset:min(offset+limit, len(matched))]

		for _, p := range matched {
			author := st.users[p.UserID]
			views = append(views, domain.PostView{
				Post:           p,
				AuthorUsername: author.Username,
				AuthorEmail:    author.Email,
			})
		}
		return nil
	})
	return views, err
}

func newestFirst(a, b domain.Post) int {
	if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type followsRepo struct {
	db access
}

func (r *followsRepo) CreateFollow(ctx context.Context, f domain.Follow) (bool, error) {
	var created bool
	err := r.db.write(func(st *state) error {
		_, okA := st.users[f.FollowerID]
		_, okB := st.users[f.FollowedID]
		if !okA || !okB {
			return store.ErrNotFound
		}
		created = st.follows.Add(f.FollowerID, f.FollowedID)
		return nil
	})
	return created, err
}

func (r *followsRepo) DeleteFollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	var removed bool
	err := r.db.write(func(st *state) error {
		removed = st.follows.Remove(followerID, followedID)
		return nil
	})
	return removed, err
}

func (r *followsRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var ok bool
	err := r.db.read(func(st *state) error {
		ok = st.follows.Has(followerID, followedID)
		return nil
	})
	return ok, err
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.read(func(st *state) error {
		ids = st.follows.In(userID)
		return nil
	})
	return ids, err
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.read(func(st *state) error {
		ids = st.follows.Out(userID)
		return nil
	})
	return ids, err
}

func (r *followsRepo) CountFollowers(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.read(func(st *state) error {
		n = st.follows.InDegree(userID)
		return nil
	})
	return n, err
}

func (r *followsRepo) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.read(func(st *state) error {
		n = st.follows.OutDegree(userID)
		return nil
	})
	return n, err
}
