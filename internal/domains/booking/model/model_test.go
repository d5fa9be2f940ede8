package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model"
)

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to checked-in skips confirmation", from: model.StatusPending, to: model.StatusCheckedIn, want: false},
		{name: "confirmed to checked-in", from: model.StatusConfirmed, to: model.StatusCheckedIn, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to checked-out skips stay", from: model.StatusConfirmed, to: model.StatusCheckedOut, want: false},
		{name: "checked-in to checked-out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "checked-in cannot cancel", from: model.StatusCheckedIn, to: model.StatusCancelled, want: false},
		{name: "checked-out is terminal", from: model.StatusCheckedOut, to: model.StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "no self transition", from: model.StatusConfirmed, to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{Status: tt.from}

			assert.Equal(t, tt.want, booking.CanTransitionTo(tt.to))
		})
	}
}
