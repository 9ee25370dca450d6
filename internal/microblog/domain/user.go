package domain

import (
	"crypto/md5" // #nosec G501 - gravatar addresses are md5 digests, not a security boundary
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const gravatarURL = "https://www.gravatar.com/avatar/%s?d=identicon&s=%d"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	AboutMe      string
	LastSeen     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Avatar returns the gravatar identicon URL for the user at the given pixel size.
func (u User) Avatar(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email)))) // #nosec G401
	return fmt.Sprintf(gravatarURL, hex.EncodeToString(sum[:]), size)
}

// Profile is a user as seen by another user.
type Profile struct {
	User           User
	FollowerCount  int
	FollowingCount int

	// ViewerFollows reports whether the viewing user follows User.
	ViewerFollows bool
	// FollowsViewer reports whether User follows the viewing user.
	FollowsViewer bool
}
