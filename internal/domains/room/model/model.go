package model

import (
	"inn/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber = "room_number"
	FieldStatus     = "status"
	FieldGuestName  = "guest_name"
	FieldDetails    = "details"

	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

type Room struct {
	RoomNumber string `db:"room_number"`
	Status     string `db:"status"`
	GuestName  string `db:"guest_name"`
	Details    string `db:"details"`
	model.Metadata
}
