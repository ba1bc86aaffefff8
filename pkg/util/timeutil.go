package util

import "time"

// NowUTC returns the current time at Postgres timestamptz precision so values
// survive a database round trip unchanged.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
