package adapter

import "time"

// Clock abstracts "now" so expiry checks can be pinned in tests instead of
// flaking at month and year boundaries.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
