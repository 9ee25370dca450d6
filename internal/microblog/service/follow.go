package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// FollowService maintains the follow relation. Following is idempotent and a
// user can never follow themselves.
type FollowService struct {
	Store store.Store
	Clock Clock
}

// Follow makes followerID follow followedID and reports whether a new edge
// was created. Following someone already followed is not an error.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	log := slogx.FromContext(ctx)

	if followerID == followedID {
		log.Warn("follow: self follow rejected", slog.Int64("user_id", followerID))
		return false, ErrCannotFollowSelf
	}

	var created bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireUsers(ctx, tx, followerID, followedID); err != nil {
			return err
		}

		var err error
		created, err = tx.Follows().CreateFollow(ctx, domain.Follow{
			FollowerID: followerID,
			FollowedID: followedID,
			CreatedAt:  s.Clock.now(),
		})
		return notFound(err)
	})
	if err != nil {
		return false, err
	}

	if created {
		log.Info("user followed",
			slog.Int64("follower_id", followerID),
			slog.Int64("followed_id", followedID),
		)
	}
	return created, nil
}

// Unfollow removes the edge and reports whether it existed.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	log := slogx.FromContext(ctx)

	if followerID == followedID {
		log.Warn("unfollow: self unfollow rejected", slog.Int64("user_id", followerID))
		return false, ErrCannotFollowSelf
	}

	var removed bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireUsers(ctx, tx, followerID, followedID); err != nil {
			return err
		}

		var err error
		removed, err = tx.Follows().DeleteFollow(ctx, followerID, followedID)
		return err
	})
	if err != nil {
		return false, err
	}

	if removed {
		log.Info("user unfollowed",
			slog.Int64("follower_id", followerID),
			slog.Int64("followed_id", followedID),
		)
	}
	return removed, nil
}

// FollowByUsername is Follow with the target named by username.
func (s *FollowService) FollowByUsername(ctx context.Context, followerID int64, username string) (domain.User, bool, error) {
	target, err := s.lookup(ctx, username)
	if err != nil {
		return domain.User{}, false, err
	}
	created, err := s.Follow(ctx, followerID, target.ID)
	return target, created, err
}

// UnfollowByUsername is Unfollow with the target named by username.
func (s *FollowService) UnfollowByUsername(ctx context.Context, followerID int64, username string) (domain.User, bool, error) {
	target, err := s.lookup(ctx, username)
	if err != nil {
		return domain.User{}, false, err
	}
	removed, err := s.Unfollow(ctx, followerID, target.ID)
	return target, removed, err
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return s.Store.Follows().IsFollowing(ctx, followerID, followedID)
}

// Followers returns the ids of users following userID, ascending.
func (s *FollowService) Followers(ctx context.Context, userID int64) ([]int64, error) {
	if err := requireUsers(ctx, s.Store, userID); err != nil {
		return nil, err
	}
	return s.Store.Follows().ListFollowers(ctx, userID)
}

// Following returns the ids of users userID follows, ascending.
func (s *FollowService) Following(ctx context.Context, userID int64) ([]int64, error) {
	if err := requireUsers(ctx, s.Store, userID); err != nil {
		return nil, err
	}
	return s.Store.Follows().ListFollowing(ctx, userID)
}

// FollowersOf returns the users following username, ordered by id.
func (s *FollowService) FollowersOf(ctx context.Context, username string) ([]domain.User, error) {
	return s.listUsers(ctx, username, s.Followers)
}

// FollowingOf returns the users username follows, ordered by id.
func (s *FollowService) FollowingOf(ctx context.Context, username string) ([]domain.User, error) {
	return s.listUsers(ctx, username, s.Following)
}

func (s *FollowService) listUsers(ctx context.Context, username string, ids func(context.Context, int64) ([]int64, error)) ([]domain.User, error) {
	u, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	list, err := ids(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return s.Store.Users().ListUsersByIDs(ctx, list)
}

func (s *FollowService) lookup(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		slogx.FromContext(ctx).Warn("follow: unknown username", slog.String("username", username))
		return domain.User{}, notFound(err)
	}
	return u, nil
}

// requireUsers returns ErrNotFound unless every id names a user.
func requireUsers(ctx context.Context, st store.Store, ids ...int64) error {
	for _, id := range ids {
		if _, err := st.Users().GetUserByID(ctx, id); err != nil {
			return notFound(err)
		}
	}
	return nil
}
