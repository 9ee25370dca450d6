package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

type PostService struct {
	Store store.Store
	Clock Clock
}

// Create publishes body as userID. Markup is stripped; the remaining text
// must be non-empty and at most 140 characters.
func (s *PostService) Create(ctx context.Context, userID int64, body string) (domain.Post, error) {
	log := slogx.FromContext(ctx)

	body, err := sanitizeText("body", body, true)
	if err != nil {
		log.Warn("post: rejected", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return domain.Post{}, err
	}

	p := domain.Post{Body: body, UserID: userID, Timestamp: s.Clock.now()}
	p.ID, err = s.Store.Posts().CreatePost(ctx, p)
	if err != nil {
		return domain.Post{}, notFound(err)
	}

	log.Info("post created", slog.Int64("post_id", p.ID), slog.Int64("user_id", userID))
	return p, nil
}
