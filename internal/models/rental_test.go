package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RentalStatus
		to      RentalStatus
		allowed bool
	}{
		{"reserved to rented", StatusReserved, StatusRented, true},
		{"reserved to returned", StatusReserved, StatusReturned, true},
		{"rented to returned", StatusRented, StatusReturned, true},
		{"rented back to reserved", StatusRented, StatusReserved, false},
		{"returned to rented", StatusReturned, StatusRented, false},
		{"returned to reserved", StatusReturned, StatusReserved, false},
		{"reserved to reserved", StatusReserved, StatusReserved, false},
		{"reserved to available", StatusReserved, StatusAvailable, false},
		{"available to rented", StatusAvailable, StatusRented, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMirrorForItem(t *testing.T) {
	assert.Equal(t, StatusAvailable, StatusReturned.MirrorForItem())
	assert.Equal(t, StatusReserved, StatusReserved.MirrorForItem())
	assert.Equal(t, StatusRented, StatusRented.MirrorForItem())
}

func TestRentalActive(t *testing.T) {
	assert.True(t, (&Rental{Status: StatusReserved}).Active())
	assert.True(t, (&Rental{Status: StatusRented}).Active())
	assert.False(t, (&Rental{Status: StatusReturned}).Active())
}

func TestRentalStatusValid(t *testing.T) {
	for _, s := range []RentalStatus{StatusAvailable, StatusReserved, StatusRented, StatusReturned} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, RentalStatus("pending").Valid())
	assert.False(t, RentalStatus("").Valid())
}
