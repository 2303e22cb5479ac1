package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreightStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    FreightStatus
		to      FreightStatus
		allowed bool
	}{
		{"open to reserved", FreightStatusOpen, FreightStatusReserved, true},
		{"open to cancelled", FreightStatusOpen, FreightStatusCancelled, true},
		{"open skips to booked", FreightStatusOpen, FreightStatusBooked, false},
		{"reserved to booked", FreightStatusReserved, FreightStatusBooked, true},
		{"reserved back to open", FreightStatusReserved, FreightStatusOpen, true},
		{"booked is terminal", FreightStatusBooked, FreightStatusOpen, false},
		{"cancelled is terminal", FreightStatusCancelled, FreightStatusReserved, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	for _, to := range []BookingStatus{BookingStatusPaid, BookingStatusExpired, BookingStatusCancelled, BookingStatusFailed} {
		assert.True(t, BookingStatusInitiated.CanTransition(to), string(to))
	}
	assert.False(t, BookingStatusInitiated.Terminal())
}

func TestBookingStatus_TerminalStatesNeverRevert(t *testing.T) {
	terminal := []BookingStatus{BookingStatusPaid, BookingStatusExpired, BookingStatusCancelled, BookingStatusFailed}
	for _, from := range terminal {
		assert.True(t, from.Terminal(), string(from))
		for _, to := range []BookingStatus{BookingStatusInitiated, BookingStatusPaid, BookingStatusExpired} {
			assert.False(t, from.CanTransition(to))
		}
	}
}
