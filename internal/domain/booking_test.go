package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	held := StatusHeld
	fulfilled := StatusFulfilled

	tests := []struct {
		name     string
		status   BookingStatus
		previous *BookingStatus
		target   BookingStatus
		want     bool
	}{
		{"held to confirmed", StatusHeld, nil, StatusConfirmed, true},
		{"confirmed to fulfilled", StatusConfirmed, nil, StatusFulfilled, true},
		{"held to fulfilled skips a step", StatusHeld, nil, StatusFulfilled, false},
		{"fulfilled to confirmed is backwards", StatusFulfilled, nil, StatusConfirmed, false},
		{"held to cancelled", StatusHeld, nil, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, nil, StatusCancelled, true},
		{"fulfilled to cancelled", StatusFulfilled, nil, StatusCancelled, true},
		{"cancelled to cancelled", StatusCancelled, &held, StatusCancelled, false},
		{"cancelled restores to previous", StatusCancelled, &held, StatusHeld, true},
		{"cancelled cannot restore to other status", StatusCancelled, &held, StatusConfirmed, false},
		{"cancelled restores fulfilled", StatusCancelled, &fulfilled, StatusFulfilled, true},
		{"cancelled without snapshot cannot restore", StatusCancelled, nil, StatusHeld, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PreviousStatus: tt.previous}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.target))
		})
	}
}

func TestCanBeDeleted(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusHeld}).CanBeDeleted())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeDeleted())
	assert.True(t, (&Booking{Status: StatusCancelled}).CanBeDeleted())
	assert.False(t, (&Booking{Status: StatusFulfilled}).CanBeDeleted())
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"containment", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"identical windows", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"touching boundaries do not overlap", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(11, 0), at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
