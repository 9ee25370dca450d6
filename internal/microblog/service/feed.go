package service

import (
	"context"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
)

// FeedService assembles paginated, newest-first post listings.
type FeedService struct {
	Store store.Store

	// PerPage is the page size used when a request does not set one.
	PerPage int
}

type listFunc func(ctx context.Context, limit, offset int) ([]domain.PostView, error)

// page fetches one row past the page so HasNext needs no count query.
func (s *FeedService) page(ctx context.Context, req domain.PageRequest, list listFunc) (domain.Page[domain.PostView], error) {
	req = req.Normalize(s.PerPage)
	rows, err := list(ctx, req.PerPage+1, req.Offset())
	if err != nil {
		return domain.Page[domain.PostView]{}, err
	}
	return domain.NewPage(req, rows), nil
}

// FollowedPosts is userID's timeline: their own posts and the posts of
// everyone they follow.
func (s *FeedService) FollowedPosts(ctx context.Context, userID int64, req domain.PageRequest) (domain.Page[domain.PostView], error) {
	if err := requireUsers(ctx, s.Store, userID); err != nil {
		return domain.Page[domain.PostView]{}, err
	}
	return s.page(ctx, req, func(ctx context.Context, limit, offset int) ([]domain.PostView, error) {
		return s.Store.Posts().ListFollowedPosts(ctx, userID, limit, offset)
	})
}

// Explore lists every post.
func (s *FeedService) Explore(ctx context.Context, req domain.PageRequest) (domain.Page[domain.PostView], error) {
	return s.page(ctx, req, s.Store.Posts().ListPosts)
}

// UserPosts lists the posts written by username.
func (s *FeedService) UserPosts(ctx context.Context, username string, req domain.PageRequest) (domain.Page[domain.PostView], error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return domain.Page[domain.PostView]{}, notFound(err)
	}
	return s.page(ctx, req, func(ctx context.Context, limit, offset int) ([]domain.PostView, error) {
		return s.Store.Posts().ListUserPosts(ctx, u.ID, limit, offset)
	})
}
