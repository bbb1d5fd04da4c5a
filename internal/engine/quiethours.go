// internal/engine/quiethours.go
package engine

import (
	"strconv"
	"strings"
	"time"

	"localboost/internal/models"
)

// parseClock converts "HH:mm" to minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// IsWithinQuietHours reports whether t falls inside the quiet window.
// A window whose start is later than its end spans midnight. The start
// boundary is quiet, the end boundary is the first allowed minute.
func IsWithinQuietHours(t time.Time, qh models.QuietHours) bool {
	start, okStart := parseClock(qh.Start)
	end, okEnd := parseClock(qh.End)
	if !okStart || !okEnd {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()

	if start > end {
		return minutes >= start || minutes < end
	}
	return minutes >= start && minutes < end
}

// NextAllowedTime returns t unchanged when it is outside the quiet window,
// otherwise the window's end time on the same date, rolled forward a day
// when that boundary is not strictly after t.
func NextAllowedTime(t time.Time, qh models.QuietHours) time.Time {
	if !IsWithinQuietHours(t, qh) {
		return t
	}

	end, ok := parseClock(qh.End)
	if !ok {
		return t
	}

	next := time.Date(t.Year(), t.Month(), t.Day(), end/60, end%60, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
