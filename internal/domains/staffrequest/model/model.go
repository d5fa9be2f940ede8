package model

import (
	"inn/shared/model"
)

const (
	TableName  = "staff_requests"
	EntityName = "staff_request"

	FieldID          = "id"
	FieldType        = "type"
	FieldCustomType  = "custom_type"
	FieldDescription = "description"
	FieldRoomNumber  = "room_number"
	FieldPriority    = "priority"
	FieldStatus      = "status"

	TypeCleaning    = "cleaning"
	TypeMaintenance = "maintenance"
	TypeRoomService = "room-service"
	TypeAmenities   = "amenities"
	TypeCustom      = "custom"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// StaffRequest is a task for housekeeping or maintenance staff. It has no
// link to bookings or reservations.
type StaffRequest struct {
	ID          string `db:"id"`
	Type        string `db:"type"`
	CustomType  string `db:"custom_type"`
	Description string `db:"description"`
	RoomNumber  string `db:"room_number"`
	Priority    string `db:"priority"`
	Status      string `db:"status"`
	model.Metadata
}
