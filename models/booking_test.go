package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s should be allowed", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestCanTransitionSameStatusIsNoOp(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.NoError(t, CanTransition(s, s), "%s -> %s must not error", s, s)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.Error(t, CanTransition(BookingStatus("archived"), StatusCancelled))
}
