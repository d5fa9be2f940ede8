package dto

import (
	"inn/internal/domains/staffrequest/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequestRequest struct {
	Type        string `json:"type"        validate:"required,oneof=cleaning maintenance room-service amenities custom"`
	CustomType  string `json:"custom_type" validate:"required_if=Type custom,omitempty,max=50"`
	Description string `json:"description" validate:"required,max=500"`
	RoomNumber  string `json:"room_number" validate:"omitempty,max=10"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
}

func (c *CreateStaffRequestRequest) ToModel(user string) model.StaffRequest {
	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return model.StaffRequest{
		ID:          uuid.NewString(),
		Type:        c.Type,
		CustomType:  c.CustomType,
		Description: c.Description,
		RoomNumber:  c.RoomNumber,
		Priority:    priority,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateStaffRequestRequest deliberately exposes only the mutable fields;
// type and room are fixed at creation.
type UpdateStaffRequestRequest struct {
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Priority    string `db:"priority"    json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=pending completed cancelled"`
}

type StaffRequestResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	CustomType  string `json:"custom_type,omitempty"`
	Description string `json:"description"`
	RoomNumber  string `json:"room_number,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *StaffRequestResponse) FromModel(mod model.StaffRequest) {
	r.ID = mod.ID
	r.Type = mod.Type
	r.CustomType = mod.CustomType
	r.Description = mod.Description
	r.RoomNumber = mod.RoomNumber
	r.Priority = mod.Priority
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetStaffRequestsResponse struct {
	StaffRequests []StaffRequestResponse `json:"staff_requests"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetStaffRequestsResponse) FromModels(models []model.StaffRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.StaffRequests = make([]StaffRequestResponse, len(models))
	for i, mod := range models {
		r.StaffRequests[i].FromModel(mod)
	}
}
