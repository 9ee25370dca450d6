package http

import (
	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
)

// Avatar sizes in pixels.
const (
	profileAvatarSize = 128
	postAvatarSize    = 36
)

func userResponse(u domain.User) blogsdk.UserResponse {
	return blogsdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		AboutMe:   u.AboutMe,
		Avatar:    u.Avatar(profileAvatarSize),
		LastSeen:  u.LastSeen,
		CreatedAt: u.CreatedAt,
	}
}

func meResponse(u domain.User) blogsdk.MeResponse {
	return blogsdk.MeResponse{UserResponse: userResponse(u), Email: u.Email}
}

func userList(users []domain.User) blogsdk.UserListResponse {
	out := blogsdk.UserListResponse{Users: make([]blogsdk.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, userResponse(u))
	}
	return out
}

func profileResponse(p domain.Profile) blogsdk.ProfileResponse {
	return blogsdk.ProfileResponse{
		User:           userResponse(p.User),
		FollowerCount:  p.FollowerCount,
		FollowingCount: p.FollowingCount,
		Following:      p.ViewerFollows,
		FollowsYou:     p.FollowsViewer,
	}
}

func postResponse(p domain.PostView) blogsdk.PostResponse {
	author := domain.User{ID: p.UserID, Username: p.AuthorUsername, Email: p.AuthorEmail}
	return blogsdk.PostResponse{
		ID:        p.ID,
		Body:      p.Body,
		Timestamp: p.Timestamp,
		Author: blogsdk.AuthorResponse{
			ID:       author.ID,
			Username: author.Username,
			Avatar:   author.Avatar(postAvatarSize),
		},
	}
}

func postPage(page domain.Page[domain.PostView]) blogsdk.PostPage {
	out := blogsdk.PostPage{
		Posts:    make([]blogsdk.PostResponse, 0, len(page.Items)),
		Page:     page.Page,
		PerPage:  page.PerPage,
		HasNext:  page.HasNext,
		HasPrev:  page.HasPrev,
		NextPage: page.NextPage(),
		PrevPage: page.PrevPage(),
	}
	for _, p := range page.Items {
		out.Posts = append(out.Posts, postResponse(p))
	}
	return out
}
