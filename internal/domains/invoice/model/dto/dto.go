package dto

import (
	"inn/internal/domains/invoice/model"
	"inn/internal/pricing"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/timezone"
)

type ChargeRequest struct {
	Description string  `json:"description" validate:"required,max=100"`
	Amount      float64 `json:"amount"      validate:"required,min=0"`
}

type GenerateInvoiceRequest struct {
	BookingID         string          `json:"booking_id"         validate:"required,max=50"`
	AdditionalCharges []ChargeRequest `json:"additional_charges" validate:"omitempty,dive"`
}

func (g *GenerateInvoiceRequest) Charges() []pricing.Charge {
	charges := make([]pricing.Charge, len(g.AdditionalCharges))
	for i, charge := range g.AdditionalCharges {
		charges[i] = pricing.Charge{Description: charge.Description, Amount: charge.Amount}
	}

	return charges
}

type InvoiceResponse struct {
	ID                string           `json:"id"`
	BookingID         string           `json:"booking_id"`
	GuestName         string           `json:"guest_name"`
	RoomNumber        string           `json:"room_number"`
	Category          string           `json:"category"`
	CheckIn           string           `json:"check_in"`
	CheckOut          string           `json:"check_out"`
	BillingUnit       string           `json:"billing_unit"`
	BaseRate          float64          `json:"base_rate"`
	Duration          int              `json:"duration"`
	AdditionalCharges []pricing.Charge `json:"additional_charges"`
	AdditionalTotal   float64          `json:"additional_total"`
	TotalAmount       float64          `json:"total_amount"`
	GeneratedAt       string           `json:"generated_at"`
	ArchiveURL        string           `json:"archive_url,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.GuestName = mod.GuestName
	r.RoomNumber = mod.RoomNumber
	r.Category = mod.Category
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.BillingUnit = mod.BillingUnit
	r.BaseRate = mod.BaseRate
	r.Duration = mod.Duration
	r.AdditionalCharges = mod.AdditionalCharges
	r.AdditionalTotal = mod.AdditionalTotal
	r.TotalAmount = mod.TotalAmount
	r.GeneratedAt = timezone.Format(mod.GeneratedAt, constant.DateFormat)
	r.ArchiveURL = mod.ArchiveURL
	r.Metadata.FromModel(mod.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice) {
	r.TotalData = len(models)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
