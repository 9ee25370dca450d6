// Package storetest is a behavioural suite shared by every store driver.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Run exercises the store.Store contract against the driver built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("follows", func(t *testing.T) { testFollows(t, newStore(t)) })
	t.Run("followed posts", func(t *testing.T) { testFollowedPosts(t, newStore(t)) })
	t.Run("listing windows", func(t *testing.T) { testListingWindows(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
}

// MustCreateUser inserts a user named username with a derived email.
func MustCreateUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()
	u := domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		LastSeen:     epoch,
		CreatedAt:    epoch,
		UpdatedAt:    epoch,
	}
	id, err := st.Users().CreateUser(context.Background(), u)
	require.NoError(t, err)
	u.ID = id
	return u
}

// MustCreatePost inserts a post by userID at epoch plus secs seconds.
func MustCreatePost(t *testing.T, st store.Store, userID int64, body string, secs int) domain.Post {
	t.Helper()
	p := domain.Post{Body: body, UserID: userID, Timestamp: epoch.Add(time.Duration(secs) * time.Second)}
	id, err := st.Posts().CreatePost(context.Background(), p)
	require.NoError(t, err)
	p.ID = id
	return p
}

func bodies(posts []domain.PostView) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Body)
	}
	return out
}

func testUsers(t *testing.T, st store.Store) {
	ctx := context.Background()
	alice := MustCreateUser(t, st, "alice")
	bob := MustCreateUser(t, st, "bob")
	require.NotEqual(t, alice.ID, bob.ID)

	got, err := st.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@example.com", got.Email)
	require.True(t, got.CreatedAt.Equal(epoch))

	got, err = st.Users().GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, bob.ID, got.ID)

	got, err = st.Users().GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, bob.ID, got.ID)

	_, err = st.Users().GetUserByID(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Duplicate username and duplicate email
	_, err = st.Users().CreateUser(ctx, domain.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	_, err = st.Users().CreateUser(ctx, domain.User{Username: "other", Email: "alice@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	later := epoch.Add(time.Hour)
	require.NoError(t, st.Users().UpdateProfile(ctx, alice.ID, "alicia", "hello", later))
	got, err = st.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alicia", got.Username)
	require.Equal(t, "hello", got.AboutMe)
	require.True(t, got.UpdatedAt.Equal(later))

	err = st.Users().UpdateProfile(ctx, alice.ID, "bob", "", later)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	err = st.Users().UpdateProfile(ctx, 9999, "ghost", "", later)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Users().UpdatePasswordHash(ctx, bob.ID, "new-hash", later))
	require.NoError(t, st.Users().UpdateLastSeen(ctx, bob.ID, later))
	got, err = st.Users().GetUserByID(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.True(t, got.LastSeen.Equal(later))
	require.ErrorIs(t, st.Users().UpdateLastSeen(ctx, 9999, later), store.ErrNotFound)

	users, err := st.Users().ListUsersByIDs(ctx, []int64{bob.ID, 9999, alice.ID})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, alice.ID, users[0].ID)
	require.Equal(t, bob.ID, users[1].ID)

	users, err = st.Users().ListUsersByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func testFollows(t *testing.T, st store.Store) {
	ctx := context.Background()
	a := MustCreateUser(t, st, "alice")
	b := MustCreateUser(t, st, "bob")
	c := MustCreateUser(t, st, "carol")
	f := st.Follows()

	created, err := f.CreateFollow(ctx, domain.Follow{FollowerID: a.ID, FollowedID: b.ID, CreatedAt: epoch})
	require.NoError(t, err)
	require.True(t, created)

	// Second insert of the same edge is absorbed
	created, err = f.CreateFollow(ctx, domain.Follow{FollowerID: a.ID, FollowedID: b.ID, CreatedAt: epoch})
	require.NoError(t, err)
	require.False(t, created)

	_, err = f.CreateFollow(ctx, domain.Follow{FollowerID: c.ID, FollowedID: b.ID, CreatedAt: epoch})
	require.NoError(t, err)

	ok, err := f.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.IsFollowing(ctx, b.ID, a.ID)
	require.NoError(t, err)
	require.False(t, ok)

	ids, err := f.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{a.ID, c.ID}, ids)

	ids, err = f.ListFollowing(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID}, ids)

	n, err := f.CountFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	n, err = f.CountFollowing(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	removed, err := f.DeleteFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = f.DeleteFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.False(t, removed)

	ids, err = f.ListFollowing(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func testFollowedPosts(t *testing.T, st store.Store) {
	ctx := context.Background()
	a := MustCreateUser(t, st, "alice")
	b := MustCreateUser(t, st, "bob")
	c := MustCreateUser(t, st, "carol")

	MustCreatePost(t, st, b.ID, "hello", 100)
	MustCreatePost(t, st, a.ID, "hi", 200)
	MustCreatePost(t, st, c.ID, "unseen", 300)

	_, err := st.Follows().CreateFollow(ctx, domain.Follow{FollowerID: a.ID, FollowedID: b.ID, CreatedAt: epoch})
	require.NoError(t, err)

	posts, err := st.Posts().ListFollowedPosts(ctx, a.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"hi", "hello"}, bodies(posts))
	require.Equal(t, "alice", posts[0].AuthorUsername)
	require.Equal(t, "bob@example.com", posts[1].AuthorEmail)

	// Following yourself must not duplicate your own posts
	_, err = st.Follows().CreateFollow(ctx, domain.Follow{FollowerID: a.ID, FollowedID: a.ID, CreatedAt: epoch})
	require.NoError(t, err)
	posts, err = st.Posts().ListFollowedPosts(ctx, a.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"hi", "hello"}, bodies(posts))

	posts, err = st.Posts().ListFollowedPosts(ctx, b.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, bodies(posts))
}

func testListingWindows(t *testing.T, st store.Store) {
	ctx := context.Background()
	a := MustCreateUser(t, st, "alice")
	b := MustCreateUser(t, st, "bob")

	// Two posts share a timestamp; the later insert sorts first
	MustCreatePost(t, st, a.ID, "p1", 10)
	MustCreatePost(t, st, b.ID, "p2", 20)
	MustCreatePost(t, st, a.ID, "p3", 20)
	MustCreatePost(t, st, b.ID, "p4", 30)

	posts, err := st.Posts().ListPosts(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"p4", "p3", "p2", "p1"}, bodies(posts))
	for i := 1; i < len(posts); i++ {
		require.False(t, posts[i].Timestamp.After(posts[i-1].Timestamp))
	}

	posts, err = st.Posts().ListPosts(ctx, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p1"}, bodies(posts))

	posts, err = st.Posts().ListPosts(ctx, 2, 10)
	require.NoError(t, err)
	require.Empty(t, posts)

	posts, err = st.Posts().ListUserPosts(ctx, a.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"p3", "p1"}, bodies(posts))

	posts, err = st.Posts().ListPosts(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, posts)
}

func testTransactions(t *testing.T, st store.Store) {
	ctx := context.Background()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "ghost", Email: "ghost@example.com", PasswordHash: "x"})
		require.NoError(t, err)
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound, "rolled back insert must not be visible")

	err = st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "kept", Email: "kept@example.com", PasswordHash: "x"})
		return err
	})
	require.NoError(t, err)

	_, err = st.Users().GetUserByUsername(ctx, "kept")
	require.NoError(t, err)

	// Nested transactions are refused
	err = st.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}
