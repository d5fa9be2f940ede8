package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/infras/otel/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	bookingModel "inn/internal/domains/booking/model"
	notifMocks "inn/internal/domains/notification/mocks"
	"inn/internal/domains/notification/model"
	"inn/internal/domains/notification/service"
	reservationMocks "inn/internal/domains/reservation/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func newNotificationService(ctrl *gomock.Controller) (
	service.Notification,
	*notifMocks.MockNotification,
	*bookingMocks.MockBooking,
	*reservationMocks.MockReservation,
) {
	mockRepo := notifMocks.NewMockNotification(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockReservationRepo, mockOtel)

	return svc, mockRepo, mockBookingRepo, mockReservationRepo
}

func notificationFixture(id, notifType, relatedID string) model.Notification {
	staleName := "Old Name"
	staleRoom := "B206"

	return model.Notification{
		ID:         id,
		Type:       notifType,
		Title:      "New Booking",
		Message:    "Booking placed",
		Status:     model.StatusUnread,
		Priority:   model.PriorityMedium,
		RelatedID:  &relatedID,
		GuestName:  &staleName,
		RoomNumber: &staleRoom,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookingRepo, _ := newNotificationService(ctrl)

	booking := bookingModel.Booking{
		ID:         "booking-id",
		GuestName:  "Current Name",
		RoomNumber: "B207",
		CheckIn:    timezone.Now(),
		CheckOut:   timezone.Now().AddDate(0, 0, 2),
		Status:     bookingModel.StatusConfirmed,
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantUnread int
		wantGuest  string
	}{
		{
			name: "feed refreshes booking snapshot",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Notification{notificationFixture("notif-1", model.TypeBooking, "booking-id")}, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:    false,
			wantUnread: 1,
			wantGuest:  "Current Name",
		},
		{
			name: "missing related booking keeps stored snapshot",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Notification{notificationFixture("notif-1", model.TypeBooking, "booking-id")}, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:    false,
			wantUnread: 1,
			wantGuest:  "Old Name",
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUnread, result.UnreadCount)
				assert.Len(t, result.Notifications, 1)
				assert.Equal(t, tt.wantGuest, result.Notifications[0].GuestName)
			}
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newNotificationService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful mark read",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "notification not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "test-user")
			err := svc.MarkRead(ctx, "notif-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newNotificationService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful mark all read",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "test-user")
			err := svc.MarkAllRead(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newNotificationService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "notification not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "notif-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
