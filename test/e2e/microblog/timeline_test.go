package microblog_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
)

// TestFollowTimeline verifies the timeline holds your own posts and those of
// the users you follow, newest first.
func TestFollowTimeline(t *testing.T) {
	c := setupContainer(t)
	ctx := t.Context()
	alice := c.signup(t, "alice")
	bob := c.signup(t, "bob")

	_, err := bob.CreatePost(ctx, "hello")
	require.NoError(t, err)
	_, err = alice.CreatePost(ctx, "hi")
	require.NoError(t, err)

	res, err := alice.Follow(ctx, "bob")
	require.NoError(t, err)
	require.True(t, res.Changed)

	// Following twice is a no-op
	res, err = alice.Follow(ctx, "bob")
	require.NoError(t, err)
	require.False(t, res.Changed)
	require.True(t, res.Following)

	feed, err := alice.Feed(ctx, blogsdk.PageOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"hi", "hello"}, postBodies(feed))

	feed, err = bob.Feed(ctx, blogsdk.PageOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, postBodies(feed))

	profile, err := bob.GetUser(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, 1, profile.FollowerCount)

	_, err = alice.Unfollow(ctx, "bob")
	require.NoError(t, err)

	feed, err = alice.Feed(ctx, blogsdk.PageOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"hi"}, postBodies(feed))
}

// TestFollowErrors verifies self follows and unknown users are rejected.
func TestFollowErrors(t *testing.T) {
	c := setupContainer(t)
	ctx := t.Context()
	alice := c.signup(t, "alice")

	_, err := alice.Follow(ctx, "alice")
	requireAPIError(t, err, http.StatusBadRequest, blogsdk.ErrorCodeValidation)

	_, err = alice.Follow(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound, blogsdk.ErrorCodeNotFound)

	_, err = alice.GetUser(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound, blogsdk.ErrorCodeNotFound)
}

// TestExplorePages pages through every post.
func TestExplorePages(t *testing.T) {
	c := setupContainer(t)
	ctx := t.Context()
	alice := c.signup(t, "alice")

	for _, body := range []string{"one", "two", "three"} {
		_, err := alice.CreatePost(ctx, body)
		require.NoError(t, err)
	}

	page, err := alice.Explore(ctx, blogsdk.PageOptions{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"three", "two"}, postBodies(page))
	require.True(t, page.HasNext)

	page, err = alice.Explore(ctx, blogsdk.PageOptions{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, postBodies(page))
	require.False(t, page.HasNext)
	require.True(t, page.HasPrev)
}

// TestPostsRequireLogin verifies anonymous clients cannot post or read feeds.
func TestPostsRequireLogin(t *testing.T) {
	c := setupContainer(t)
	ctx := t.Context()
	anon := c.newClient()

	_, err := anon.CreatePost(ctx, "hello")
	requireAPIError(t, err, http.StatusUnauthorized, blogsdk.ErrorCodeUnauthorized)

	_, err = anon.Explore(ctx, blogsdk.PageOptions{})
	requireAPIError(t, err, http.StatusUnauthorized, blogsdk.ErrorCodeUnauthorized)
}
