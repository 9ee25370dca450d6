package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// newTokens returns a token service whose clock is read from *now.
func newTokens(t *testing.T, st store.Store, now *time.Time) *ResetTokenService {
	t.Helper()
	codec, err := jwtx.NewHS256(testSecret, "microblog")
	require.NoError(t, err)
	codec.Now = func() time.Time { return *now }
	return &ResetTokenService{Codec: codec, Store: st}
}

func TestResetTokenRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		now := epoch
		tokens := newTokens(t, st, &now)
		alice := mustUser(t, st, "alice")

		token, err := tokens.Issue(alice, 1800*time.Second)
		require.NoError(t, err)

		got, err := tokens.Verify(ctx, token)
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)

		now = epoch.Add(1799 * time.Second)
		_, err = tokens.Verify(ctx, token)
		require.NoError(t, err)

		now = epoch.Add(1800 * time.Second)
		_, err = tokens.Verify(ctx, token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestResetTokenRejects(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		now := epoch
		tokens := newTokens(t, st, &now)
		alice := mustUser(t, st, "alice")

		valid, err := tokens.Issue(alice, time.Hour)
		require.NoError(t, err)

		zeroTTL, err := tokens.Issue(alice, 0)
		require.NoError(t, err)

		parts := strings.Split(valid, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		otherKey, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "microblog")
		require.NoError(t, err)
		otherKey.Now = func() time.Time { return now }
		forged, err := otherKey.Issue("1", jwtx.PurposeResetPassword, time.Hour)
		require.NoError(t, err)

		ghost, err := tokens.Codec.Issue("9999", jwtx.PurposeResetPassword, time.Hour)
		require.NoError(t, err)

		notNumeric, err := tokens.Codec.Issue("alice", jwtx.PurposeResetPassword, time.Hour)
		require.NoError(t, err)

		cases := map[string]string{
			"zero ttl":        zeroTTL,
			"tampered":        tampered,
			"other key":       forged,
			"unknown user":    ghost,
			"non numeric sub": notNumeric,
			"garbage":         "not-a-token",
			"empty":           "",
		}
		for name, token := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := tokens.Verify(ctx, token)
				require.ErrorIs(t, err, ErrTokenInvalid)
				require.Equal(t, ErrTokenInvalid, err)
			})
		}
	})
}

func TestResetTokenExpiresWithPasswordChange(t *testing.T) {
	eachStore(t, func(t *testing.T, st store.Store) {
		ctx := t.Context()
		now := epoch
		tokens := newTokens(t, st, &now)
		users := &UserService{Store: st}
		alice := mustRegister(t, users, "alice", "password1")

		token, err := tokens.Issue(alice, time.Hour)
		require.NoError(t, err)
		_, err = tokens.Verify(ctx, token)
		require.NoError(t, err)

		require.NoError(t, users.SetPassword(ctx, alice.ID, "password2"))

		_, err = tokens.Verify(ctx, token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}
