package model

import (
	"inn/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldGuestName      = "guest_name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldRoomType       = "room_type"
	FieldRoomNumber     = "room_number"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldNumberOfGuests = "number_of_guests"
	FieldStatus         = "status"
	FieldTotalAmount    = "total_amount"
	FieldPaymentStatus  = "payment_status"

	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID             string    `db:"id"`
	GuestName      string    `db:"guest_name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	RoomType       string    `db:"room_type"`
	RoomNumber     string    `db:"room_number"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	NumberOfGuests int       `db:"number_of_guests"`
	Status         string    `db:"status"`
	TotalAmount    float64   `db:"total_amount"`
	PaymentStatus  string    `db:"payment_status"`
	model.Metadata
}

// CanTransitionTo reports whether the booking state machine allows moving to
// the given status. Cancellation is only a side exit before check-in.
func (b *Booking) CanTransitionTo(status string) bool {
	switch b.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCancelled
	case StatusConfirmed:
		return status == StatusCheckedIn || status == StatusCancelled
	case StatusCheckedIn:
		return status == StatusCheckedOut
	}

	return false
}
