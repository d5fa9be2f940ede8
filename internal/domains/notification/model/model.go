package model

import (
	"inn/shared/model"
	"time"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID         = "id"
	FieldType       = "type"
	FieldTitle      = "title"
	FieldMessage    = "message"
	FieldStatus     = "status"
	FieldPriority   = "priority"
	FieldRelatedID  = "related_id"
	FieldGuestName  = "guest_name"
	FieldRoomNumber = "room_number"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"

	TypeBooking     = "booking"
	TypeReservation = "reservation"
	TypeSystem      = "system"

	StatusUnread = "unread"
	StatusRead   = "read"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification is an append-only event for the dashboard feed. The guest and
// room fields are a denormalized snapshot of the related booking or
// reservation, taken at creation and refreshed when the feed is read.
type Notification struct {
	ID         string     `db:"id"`
	Type       string     `db:"type"`
	Title      string     `db:"title"`
	Message    string     `db:"message"`
	Status     string     `db:"status"`
	Priority   string     `db:"priority"`
	RelatedID  *string    `db:"related_id"`
	GuestName  *string    `db:"guest_name"`
	RoomNumber *string    `db:"room_number"`
	CheckIn    *time.Time `db:"check_in"`
	CheckOut   *time.Time `db:"check_out"`
	model.Metadata
}
