// Package timeago renders post timestamps the way the feed shows them:
// short relative labels for recent activity and an absolute date once the
// post is old enough that "Nw" stops being useful.
package timeago

import (
	"fmt"
	"time"
)

// dateCutoff is the age beyond which an absolute date is shown instead of a
// relative label.
const dateCutoff = 4 * 7 * 24 * time.Hour

// Format converts a positive age into a compact human label:
//
//	< 1 minute   "just now"
//	< 1 hour     "5m"
//	< 1 day      "2h"
//	< 1 week     "3d"
//	<= 4 weeks   "2w"
//
// Negative ages (clock skew) are treated as "just now". Format alone caps
// at weeks; use FormatAt to switch to an absolute date past the cutoff.
func Format(age time.Duration) string {
	if age < time.Minute {
		return "just now"
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm", int(age.Minutes()))
	}
	if age < 24*time.Hour {
		return fmt.Sprintf("%dh", int(age.Hours()))
	}
	if age < 7*24*time.Hour {
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
	return fmt.Sprintf("%dw", int(age.Hours()/(24*7)))
}

// FormatAt renders the timestamp t relative to now, switching to an absolute
// ISO date (YYYY-MM-DD) once t is older than four weeks.
func FormatAt(t, now time.Time) string {
	age := now.Sub(t)
	if age > dateCutoff {
		return t.Format("2006-01-02")
	}
	return Format(age)
}

// FormatMillis is a convenience for callers holding millisecond timestamps
// (the backend stores creation times as Unix milliseconds).
func FormatMillis(millis int64, now time.Time) string {
	return FormatAt(time.UnixMilli(millis), now)
}
