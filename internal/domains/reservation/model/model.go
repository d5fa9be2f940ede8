package model

import (
	"inn/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldReservationID  = "reservation_id"
	FieldGuestName      = "guest_name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldRoomType       = "room_type"
	FieldRoomNumber     = "room_number"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldNumberOfGuests = "number_of_guests"
	FieldStatus         = "status"
	FieldExpiryDate     = "expiry_date"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Reservation is a soft, time-boxed hold on a room type. Unlike a booking it
// never mutates room state; a pending reservation past its expiry date is
// swept on demand.
type Reservation struct {
	ReservationID  string    `db:"reservation_id"`
	GuestName      string    `db:"guest_name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	RoomType       string    `db:"room_type"`
	RoomNumber     string    `db:"room_number"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	NumberOfGuests int       `db:"number_of_guests"`
	Status         string    `db:"status"`
	ExpiryDate     time.Time `db:"expiry_date"`
	model.Metadata
}
