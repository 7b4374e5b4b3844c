package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScheduleCapacity(t *testing.T) {
	s := DefaultSchedule()
	assert.Equal(t, 720, s.CapacityMinutes())
}

func TestIsWorkday(t *testing.T) {
	s := DefaultSchedule()

	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	assert.True(t, s.IsWorkday(monday))
	assert.False(t, s.IsWorkday(saturday))
	assert.False(t, s.IsWorkday(sunday))
}

func TestWithinOperatingWindow(t *testing.T) {
	s := DefaultSchedule()
	at := func(day, h, m int) time.Time {
		return time.Date(2026, 3, day, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside hours", at(2, 10, 0), at(2, 11, 0), true},
		{"starts at opening", at(2, 8, 0), at(2, 9, 0), true},
		{"ends at closing", at(2, 19, 0), at(2, 20, 0), true},
		{"starts before opening", at(2, 7, 0), at(2, 8, 30), false},
		{"ends after closing", at(2, 19, 30), at(2, 20, 30), false},
		{"saturday rejected", at(7, 10, 0), at(7, 11, 0), false},
		{"zero length window", at(2, 10, 0), at(2, 10, 0), false},
		{"end before start", at(2, 11, 0), at(2, 10, 0), false},
		{"spans two days", at(2, 19, 0), at(3, 9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.WithinOperatingWindow(tt.start, tt.end))
		})
	}
}
