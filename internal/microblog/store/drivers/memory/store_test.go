package memory

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/internal/microblog/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return NewStore() })
}

func TestTransactionIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	alice := storetest.MustCreateUser(t, st, "alice")

	tx, err := st.Tx(ctx)
	require.NoError(t, err)

	_, err = tx.Posts().CreatePost(ctx, domain.Post{Body: "draft", UserID: alice.ID})
	require.NoError(t, err)

	// Uncommitted writes stay invisible to readers
	posts, err := st.Posts().ListPosts(ctx, 10, 0)
	require.NoError(t, err)
	require.Empty(t, posts)

	require.NoError(t, tx.Commit())
	require.ErrorIs(t, tx.Commit(), sql.ErrTxDone)

	posts, err = st.Posts().ListPosts(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestConcurrentFollows(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	target := storetest.MustCreateUser(t, st, "target")

	const n = 20
	ids := make([]int64, n)
	for i := range n {
		ids[i] = storetest.MustCreateUser(t, st, "user"+string(rune('a'+i))).ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		// Each edge is written twice; only one insert may win
		for range 2 {
			go func() {
				defer wg.Done()
				_ = st.WithTx(ctx, func(tx store.Tx) error {
					_, err := tx.Follows().CreateFollow(ctx, domain.Follow{FollowerID: id, FollowedID: target.ID})
					return err
				})
			}()
		}
	}
	wg.Wait()

	count, err := st.Follows().CountFollowers(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, n, count)
}
