package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"inn/internal/pricing"
	"inn/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldGuestName         = "guest_name"
	FieldRoomNumber        = "room_number"
	FieldCategory          = "category"
	FieldCheckIn           = "check_in"
	FieldCheckOut          = "check_out"
	FieldBillingUnit       = "billing_unit"
	FieldBaseRate          = "base_rate"
	FieldDuration          = "duration"
	FieldAdditionalCharges = "additional_charges"
	FieldAdditionalTotal   = "additional_total"
	FieldTotalAmount       = "total_amount"
	FieldGeneratedAt       = "generated_at"
	FieldArchiveURL        = "archive_url"
)

// ChargeList stores itemized charges as a JSONB column, preserving order.
type ChargeList []pricing.Charge

func (c ChargeList) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}

	encoded, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charges: %w", err)
	}

	return encoded, nil
}

func (c *ChargeList) Scan(src any) error {
	if src == nil {
		*c = ChargeList{}

		return nil
	}

	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported charge list source type %T", src)
	}

	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to unmarshal charges: %w", err)
	}

	return nil
}

// Invoice is an immutable pricing snapshot taken at generation time. Later
// edits to the booking never change an issued invoice.
type Invoice struct {
	ID                string     `db:"id"`
	BookingID         string     `db:"booking_id"`
	GuestName         string     `db:"guest_name"`
	RoomNumber        string     `db:"room_number"`
	Category          string     `db:"category"`
	CheckIn           time.Time  `db:"check_in"`
	CheckOut          time.Time  `db:"check_out"`
	BillingUnit       string     `db:"billing_unit"`
	BaseRate          float64    `db:"base_rate"`
	Duration          int        `db:"duration"`
	AdditionalCharges ChargeList `db:"additional_charges"`
	AdditionalTotal   float64    `db:"additional_total"`
	TotalAmount       float64    `db:"total_amount"`
	GeneratedAt       time.Time  `db:"generated_at"`
	ArchiveURL        string     `db:"archive_url"`
	model.Metadata
}
