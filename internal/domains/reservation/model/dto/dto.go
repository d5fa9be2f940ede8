package dto

import (
	"inn/internal/domains/reservation/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
	"time"
)

type CreateReservationRequest struct {
	ReservationID  string `json:"reservation_id"   validate:"required,max=50"`
	GuestName      string `json:"guest_name"       validate:"required,max=100"`
	Email          string `json:"email"            validate:"omitempty,email,max=100"`
	Phone          string `json:"phone"            validate:"omitempty,max=20"`
	RoomType       string `json:"room_type"        validate:"required,max=50"`
	RoomNumber     string `json:"room_number"      validate:"omitempty,max=10"`
	CheckIn        string `json:"check_in"         validate:"required"`
	CheckOut       string `json:"check_out"        validate:"required"`
	NumberOfGuests int    `json:"number_of_guests" validate:"omitempty,min=1"`
}

func (c *CreateReservationRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateReservationRequest) ToModel(user string, checkIn, checkOut, expiryDate time.Time) model.Reservation {
	guests := c.NumberOfGuests
	if guests == 0 {
		guests = 1
	}

	return model.Reservation{
		ReservationID:  c.ReservationID,
		GuestName:      c.GuestName,
		Email:          c.Email,
		Phone:          c.Phone,
		RoomType:       c.RoomType,
		RoomNumber:     c.RoomNumber,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: guests,
		Status:         model.StatusPending,
		ExpiryDate:     expiryDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed expired cancelled"`
}

type ReservationResponse struct {
	ReservationID  string `json:"reservation_id"`
	GuestName      string `json:"guest_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RoomType       string `json:"room_type"`
	RoomNumber     string `json:"room_number"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	NumberOfGuests int    `json:"number_of_guests"`
	Status         string `json:"status"`
	ExpiryDate     string `json:"expiry_date"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ReservationID = mod.ReservationID
	r.GuestName = mod.GuestName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.RoomType = mod.RoomType
	r.RoomNumber = mod.RoomNumber
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.NumberOfGuests = mod.NumberOfGuests
	r.Status = mod.Status
	r.ExpiryDate = timezone.Format(mod.ExpiryDate, constant.DateFormat)
	r.Metadata.FromModel(mod.Metadata)
}

type DeleteExpiredResponse struct {
	Deleted int `json:"deleted"`
}
