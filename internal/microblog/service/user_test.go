package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

func TestRegister(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		users := &UserService{Store: st, Clock: fixedClock(epoch)}

		u, err := users.Register(ctx, RegisterInput{Username: " alice ", Email: "Alice@Example.COM", Password: "correct horse"})
		require.NoError(t, err)
		require.NotZero(t, u.ID)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, "alice@example.com", u.Email)
		require.NotContains(t, u.PasswordHash, "correct horse")
		require.True(t, u.CreatedAt.Equal(epoch))

		stored, err := users.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, u.ID, stored.ID)

		t.Run("duplicate username", func(t *testing.T) {
			_, err := users.Register(ctx, RegisterInput{Username: "alice", Email: "other@example.com", Password: "password1"})
			requireValidation(t, err, "username")
		})

		t.Run("duplicate email in another case", func(t *testing.T) {
			_, err := users.Register(ctx, RegisterInput{Username: "alice2", Email: "ALICE@example.com", Password: "password1"})
			requireValidation(t, err, "email")
		})
	})
}

func TestRegisterValidation(t *testing.T) {
	users := &UserService{Store: memoryStore()}

	cases := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"empty username", RegisterInput{Username: " ", Email: "a@example.com", Password: "password1"}, "username"},
		{"username with spaces", RegisterInput{Username: "al ice", Email: "a@example.com", Password: "password1"}, "username"},
		{"username too long", RegisterInput{Username: strings.Repeat("a", 65), Email: "a@example.com", Password: "password1"}, "username"},
		{"profane username", RegisterInput{Username: "fuck", Email: "a@example.com", Password: "password1"}, "username"},
		{"malformed email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "password1"}, "email"},
		{"email with display name", RegisterInput{Username: "alice", Email: "Alice <a@example.com>", Password: "password1"}, "email"},
		{"email too long", RegisterInput{Username: "alice", Email: strings.Repeat("a", 110) + "@example.com", Password: "password1"}, "email"},
		{"short password", RegisterInput{Username: "alice", Email: "a@example.com", Password: "short"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Register(t.Context(), tc.in)
			requireValidation(t, err, tc.field)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		users := &UserService{Store: st}
		alice := mustRegister(t, users, "alice", "password1")

		got, err := users.Authenticate(ctx, "alice", "password1")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)

		_, err = users.Authenticate(ctx, "alice", "password2")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = users.Authenticate(ctx, "nobody", "password1")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = users.Authenticate(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		users := &UserService{Store: st}
		follows := &FollowService{Store: st}

		alice := mustUser(t, st, "alice")
		bob := mustUser(t, st, "bob")
		carol := mustUser(t, st, "carol")

		_, err := follows.Follow(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		_, err = follows.Follow(ctx, carol.ID, bob.ID)
		require.NoError(t, err)
		_, err = follows.Follow(ctx, bob.ID, carol.ID)
		require.NoError(t, err)

		p, err := users.Profile(ctx, alice.ID, "bob")
		require.NoError(t, err)
		require.Equal(t, bob.ID, p.User.ID)
		require.Equal(t, 2, p.FollowerCount)
		require.Equal(t, 1, p.FollowingCount)
		require.True(t, p.ViewerFollows)
		require.False(t, p.FollowsViewer)

		p, err = users.Profile(ctx, carol.ID, "bob")
		require.NoError(t, err)
		require.True(t, p.ViewerFollows)
		require.True(t, p.FollowsViewer)

		p, err = users.Profile(ctx, 0, "bob")
		require.NoError(t, err)
		require.False(t, p.ViewerFollows)

		_, err = users.Profile(ctx, alice.ID, "nobody")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		later := epoch.Add(time.Hour)
		users := &UserService{Store: st, Clock: fixedClock(later)}

		alice := mustUser(t, st, "alice")
		mustUser(t, st, "bob")

		u, err := users.UpdateProfile(ctx, alice.ID, "alicia", "<b>hi</b> &amp; bye")
		require.NoError(t, err)
		require.Equal(t, "alicia", u.Username)
		require.Equal(t, "hi & bye", u.AboutMe)
		require.True(t, u.UpdatedAt.Equal(later))

		stored, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alicia", stored.Username)
		require.Equal(t, "hi & bye", stored.AboutMe)

		// Keeping your own name is not a conflict
		_, err = users.UpdateProfile(ctx, alice.ID, "alicia", "")
		require.NoError(t, err)

		_, err = users.UpdateProfile(ctx, alice.ID, "bob", "")
		requireValidation(t, err, "username")

		_, err = users.UpdateProfile(ctx, alice.ID, "alicia", strings.Repeat("x", 141))
		requireValidation(t, err, "about_me")

		_, err = users.UpdateProfile(ctx, 9999, "ghost", "")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTouchThrottlesWrites(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		now := epoch
		users := NewUserService(st, time.Minute)
		users.Clock = func() time.Time { return now }

		alice := mustUser(t, st, "alice")

		lastSeen := func() time.Time {
			u, err := users.GetUserByID(ctx, alice.ID)
			require.NoError(t, err)
			return u.LastSeen
		}

		now = epoch.Add(time.Hour)
		require.NoError(t, users.Touch(ctx, alice.ID))
		require.True(t, lastSeen().Equal(epoch.Add(time.Hour)))

		now = epoch.Add(time.Hour + 30*time.Second)
		require.NoError(t, users.Touch(ctx, alice.ID))
		require.True(t, lastSeen().Equal(epoch.Add(time.Hour)), "write inside the interval is skipped")

		now = epoch.Add(time.Hour + 61*time.Second)
		require.NoError(t, users.Touch(ctx, alice.ID))
		require.True(t, lastSeen().Equal(now))

		require.ErrorIs(t, users.Touch(ctx, 9999), ErrNotFound)
	})
}

func TestSetPassword(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		users := &UserService{Store: st}
		alice := mustRegister(t, users, "alice", "password1")

		requireValidation(t, users.SetPassword(ctx, alice.ID, "short"), "password")

		require.NoError(t, users.SetPassword(ctx, alice.ID, "password2"))
		_, err := users.Authenticate(ctx, "alice", "password1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = users.Authenticate(ctx, "alice", "password2")
		require.NoError(t, err)

		require.ErrorIs(t, users.SetPassword(ctx, 9999, "password3"), ErrNotFound)
	})
}
