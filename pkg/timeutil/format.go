// Package timeutil provides timestamp formatting for Flare.
//
// Archive entries store their creation time as Unix nanoseconds (int64);
// this package turns those into the short forms the history listing shows.
package timeutil

import (
	"fmt"
	"time"
)

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// FormatStamp renders a Unix nanosecond timestamp for the history listing.
// Format: "Jan 02 15:04".
func FormatStamp(ns int64) string {
	return FromNano(ns).Format("Jan 02 15:04")
}

// RelativeTime returns a human-readable relative time string.
// Examples: "just now", "5s ago", "2m ago", "1h ago", "3d ago".
func RelativeTime(ns int64) string {
	diff := time.Since(FromNano(ns))

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
