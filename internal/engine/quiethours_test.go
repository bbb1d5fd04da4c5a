package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"localboost/internal/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return ts
}

func TestIsWithinQuietHoursDaytimeWindow(t *testing.T) {
	window := models.QuietHours{Start: "09:00", End: "19:00"}

	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 03:00"), window))
	require.True(t, IsWithinQuietHours(mustTime(t, "2026-03-02 09:00"), window))
	require.True(t, IsWithinQuietHours(mustTime(t, "2026-03-02 12:30"), window))
	// End boundary is the first allowed minute.
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 19:00"), window))
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 21:00"), window))
}

func TestIsWithinQuietHoursSpansMidnight(t *testing.T) {
	window := models.QuietHours{Start: "21:00", End: "08:00"}

	require.True(t, IsWithinQuietHours(mustTime(t, "2026-03-02 23:59"), window))
	require.True(t, IsWithinQuietHours(mustTime(t, "2026-03-02 03:00"), window))
	require.True(t, IsWithinQuietHours(mustTime(t, "2026-03-02 21:00"), window))
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 08:00"), window))
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 12:00"), window))
}

func TestIsWithinQuietHoursBadClockStrings(t *testing.T) {
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 12:00"), models.QuietHours{Start: "late", End: "08:00"}))
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 12:00"), models.QuietHours{Start: "25:00", End: "08:00"}))
	require.False(t, IsWithinQuietHours(mustTime(t, "2026-03-02 12:00"), models.QuietHours{}))
}

func TestNextAllowedTimeOutsideWindowUnchanged(t *testing.T) {
	window := models.QuietHours{Start: "21:00", End: "08:00"}
	at := mustTime(t, "2026-03-02 14:00")
	require.Equal(t, at, NextAllowedTime(at, window))
}

func TestNextAllowedTimeAdvancesToEndSameDay(t *testing.T) {
	window := models.QuietHours{Start: "21:00", End: "08:00"}
	at := mustTime(t, "2026-03-02 03:15")
	require.Equal(t, mustTime(t, "2026-03-02 08:00"), NextAllowedTime(at, window))
}

func TestNextAllowedTimeRollsToNextDay(t *testing.T) {
	window := models.QuietHours{Start: "21:00", End: "08:00"}
	at := mustTime(t, "2026-03-02 22:30")
	require.Equal(t, mustTime(t, "2026-03-03 08:00"), NextAllowedTime(at, window))
}

// For any well-formed window with distinct bounds, the shifted time must be
// outside the window.
func TestNextAllowedTimeLandsOutsideWindow(t *testing.T) {
	windows := []models.QuietHours{
		{Start: "09:00", End: "19:00"},
		{Start: "21:00", End: "08:00"},
		{Start: "23:00", End: "00:30"},
		{Start: "00:00", End: "06:00"},
	}
	times := []string{
		"2026-03-02 00:00", "2026-03-02 03:00", "2026-03-02 08:00",
		"2026-03-02 09:00", "2026-03-02 12:00", "2026-03-02 19:00",
		"2026-03-02 21:00", "2026-03-02 23:30", "2026-03-02 23:59",
	}

	for _, window := range windows {
		for _, raw := range times {
			at := mustTime(t, raw)
			next := NextAllowedTime(at, window)
			require.False(t, IsWithinQuietHours(next, window),
				"window %s-%s at %s yielded %s still inside", window.Start, window.End, raw, next)
			require.False(t, next.Before(at))
		}
	}
}
