package dto

import (
	"inn/internal/domains/notification/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
)

type NotificationResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	RelatedID  string `json:"related_id,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(mod model.Notification) {
	r.ID = mod.ID
	r.Type = mod.Type
	r.Title = mod.Title
	r.Message = mod.Message
	r.Status = mod.Status
	r.Priority = mod.Priority

	if mod.RelatedID != nil {
		r.RelatedID = *mod.RelatedID
	}

	if mod.GuestName != nil {
		r.GuestName = *mod.GuestName
	}

	if mod.RoomNumber != nil {
		r.RoomNumber = *mod.RoomNumber
	}

	if mod.CheckIn != nil {
		r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	}

	if mod.CheckOut != nil {
		r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalData     int                    `json:"total_data"`
	UnreadCount   int                    `json:"unread_count"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, unreadCount int) {
	r.TotalData = len(models)
	r.UnreadCount = unreadCount

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
