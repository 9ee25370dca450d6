package service

import "time"

// Clock returns the current time. Services use time.Now when it is nil.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
