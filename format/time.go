package format

import "time"

// timestampLayout renders e.g. "Friday, December  1, 2017, 12:00:00".
// The day of month is space padded, not zero padded.
const timestampLayout = "Monday, January _2, 2006, 15:04:05"

// Timestamp formats t in its own location.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Now formats the current local time.
func Now() string {
	return Timestamp(time.Now())
}
