package dto

import (
	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestName      string `json:"guest_name"       validate:"required,max=100"`
	Email          string `json:"email"            validate:"omitempty,email,max=100"`
	Phone          string `json:"phone"            validate:"omitempty,max=20"`
	RoomType       string `json:"room_type"        validate:"omitempty,max=50"`
	RoomNumber     string `json:"room_number"      validate:"required,max=10"`
	CheckIn        string `json:"check_in"         validate:"required"`
	CheckOut       string `json:"check_out"        validate:"required"`
	NumberOfGuests int    `json:"number_of_guests" validate:"omitempty,min=1"`
	Status         string `json:"status"           validate:"omitempty,oneof=pending confirmed"`
}

// ParseDates parses the check-in and check-out date strings in the
// application timezone.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalAmount float64) model.Booking {
	guests := c.NumberOfGuests
	if guests == 0 {
		guests = 1
	}

	// The guest flow books confirmed directly; pending is the exception.
	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:             uuid.NewString(),
		GuestName:      c.GuestName,
		Email:          c.Email,
		Phone:          c.Phone,
		RoomType:       c.RoomType,
		RoomNumber:     c.RoomNumber,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: guests,
		Status:         status,
		TotalAmount:    totalAmount,
		PaymentStatus:  model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ChargeRequest struct {
	Description string  `json:"description" validate:"required,max=100"`
	Amount      float64 `json:"amount"      validate:"required,min=0"`
}

// QuoteBookingRequest prices a stay without creating anything. Either the
// room number or the room type identifies the category.
type QuoteBookingRequest struct {
	RoomNumber        string          `json:"room_number"        validate:"required_without=RoomType,omitempty,max=10"`
	RoomType          string          `json:"room_type"          validate:"required_without=RoomNumber,omitempty,max=50"`
	CheckIn           string          `json:"check_in"           validate:"required"`
	CheckOut          string          `json:"check_out"          validate:"required"`
	AdditionalCharges []ChargeRequest `json:"additional_charges" validate:"omitempty,dive"`
}

func (q *QuoteBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, q.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, q.CheckOut)

	return checkIn, checkOut, err
}

type QuoteBookingResponse struct {
	Category        string  `json:"category"`
	Duration        int     `json:"duration"`
	BillingUnit     string  `json:"billing_unit"`
	BaseRate        float64 `json:"base_rate"`
	AdditionalTotal float64 `json:"additional_total"`
	Total           float64 `json:"total"`
}

type UpdateBookingRequest struct {
	GuestName      string `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	Email          string `db:"email"            json:"email"            validate:"omitempty,email,max=100"`
	Phone          string `db:"phone"            json:"phone"            validate:"omitempty,max=20"`
	NumberOfGuests int    `db:"number_of_guests" json:"number_of_guests" validate:"omitempty,min=1"`
	PaymentStatus  string `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending paid refunded"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked-in checked-out cancelled"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	GuestName      string  `json:"guest_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	RoomType       string  `json:"room_type"`
	RoomNumber     string  `json:"room_number"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	NumberOfGuests int     `json:"number_of_guests"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"total_amount"`
	PaymentStatus  string  `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestName = mod.GuestName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.RoomType = mod.RoomType
	r.RoomNumber = mod.RoomNumber
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.NumberOfGuests = mod.NumberOfGuests
	r.Status = mod.Status
	r.TotalAmount = mod.TotalAmount
	r.PaymentStatus = mod.PaymentStatus
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
