package domain

import "time"

// MaxPostLength is the maximum number of characters in a post body and in a
// user's about_me.
const MaxPostLength = 140

type Post struct {
	ID        int64
	Body      string
	Timestamp time.Time
	UserID    int64
}

// PostView is a post joined with the parts of its author needed to render it.
type PostView struct {
	Post
	AuthorUsername string
	AuthorEmail    string
}
