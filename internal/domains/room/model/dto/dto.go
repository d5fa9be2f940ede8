package dto

import (
	"inn/internal/domains/room/model"
	"inn/internal/pricing"
	"inn/shared"
	gDto "inn/shared/dto"
)

type CheckInRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Occupied Maintenance"`
}

type UpdateRoomDetailsRequest struct {
	Details string `json:"details" validate:"max=500"`
}

type CheckOutResponse struct {
	RoomNumber string `json:"room_number"`
	GuestName  string `json:"guest_name"`
}

type RoomResponse struct {
	RoomNumber string `json:"room_number"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	GuestName  string `json:"guest_name"`
	Details    string `json:"details"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.RoomNumber = mod.RoomNumber
	r.Status = mod.Status
	r.GuestName = mod.GuestName
	r.Details = mod.Details
	r.Metadata.FromModel(mod.Metadata)

	if category, err := pricing.CategoryFromRoomNumber(mod.RoomNumber); err == nil {
		r.Category = category
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
