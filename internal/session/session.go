// Package session detects session boundaries on the candle timeline.
// A session is a UTC calendar day; the VWAP family resets its cumulative
// sums when the day changes. Detection works purely from candle timestamps -
// never from the wall clock - so identical input always yields identical
// output (live/replay parity).
package session

import "time"

// Day returns the UTC calendar day (as days since epoch) of an epoch-ms
// timestamp.
func Day(epochMS int64) int64 {
	return epochMS / int64(24*time.Hour/time.Millisecond)
}

// Boundary reports whether a session boundary lies between two consecutive
// candle timestamps.
func Boundary(prevMS, curMS int64) bool {
	return Day(prevMS) != Day(curMS)
}
