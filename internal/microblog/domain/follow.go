package domain

import "time"

// Follow is a directed edge: FollowerID follows FollowedID.
type Follow struct {
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}
