package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	notifMocks "inn/internal/domains/notification/mocks"
	reservationMocks "inn/internal/domains/reservation/mocks"
	"inn/internal/domains/reservation/model"
	"inn/internal/domains/reservation/model/dto"
	"inn/internal/domains/reservation/service"
	eventMocks "inn/internal/events/mocks"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func newReservationService(ctrl *gomock.Controller) (
	service.Reservation,
	*reservationMocks.MockReservation,
	*notifMocks.MockNotification,
	*eventMocks.MockPublisher,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockNotifRepo := notifMocks.NewMockNotification(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.ReservationHoldHours = 24

	svc := service.New(mockRepo, mockNotifRepo, mockPublisher, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockNotifRepo, mockPublisher, mockCache
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockNotifRepo, mockPublisher, mockCache := newReservationService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishLifecycle(gomock.Any(), gomock.Any()).AnyTimes()

	validReq := dto.CreateReservationRequest{
		ReservationID: "RES-001",
		GuestName:     "Jane Doe",
		RoomType:      "single",
		CheckIn:       "2026-09-10",
		CheckOut:      "2026-09-12",
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.CreateReservationRequest{
				ReservationID: "RES-002",
				GuestName:     "Jane Doe",
				RoomType:      "single",
				CheckIn:       "10-09-2026",
				CheckOut:      "12-09-2026",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "invalid room type",
			req: dto.CreateReservationRequest{
				ReservationID: "RES-003",
				GuestName:     "Jane Doe",
				RoomType:      "penthouse",
				CheckIn:       "2026-09-10",
				CheckOut:      "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "dorm stay below minimum",
			req: dto.CreateReservationRequest{
				ReservationID: "RES-004",
				GuestName:     "Jane Doe",
				RoomType:      "dorm",
				CheckIn:       "2026-09-10",
				CheckOut:      "2026-09-15",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate reservation id",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "test-user")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.ReservationID, result.ReservationID)
				assert.Equal(t, model.StatusPending, result.Status)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newReservationService(ctrl)

	reservation := model.Reservation{
		ReservationID: "RES-001",
		GuestName:     "Jane Doe",
		RoomType:      "single",
		Status:        model.StatusPending,
		CheckIn:       timezone.Now(),
		CheckOut:      timezone.Now().AddDate(0, 0, 2),
		ExpiryDate:    timezone.Now().Add(24 * time.Hour),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "RES-001",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "RES-001",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "RES-001",
		},
		{
			name: "reservation not found",
			id:   "missing",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ReservationID)
				}
			}
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockNotifRepo, mockPublisher, mockCache := newReservationService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().PublishLifecycle(gomock.Any(), gomock.Any()).AnyTimes()

	reservation := model.Reservation{
		ReservationID: "RES-001",
		GuestName:     "Jane Doe",
		Status:        model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful confirmation",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusCancelled},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

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
			err := svc.UpdateStatus(ctx, tt.req, "RES-001")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_DeleteExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newReservationService(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantDeleted int
	}{
		{
			name: "expired reservations swept",
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteExpired(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			wantErr:     false,
			wantDeleted: 3,
		},
		{
			name: "nothing to sweep",
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteExpired(gomock.Any(), gomock.Any()).
					Return(0, nil)
			},
			wantErr:     false,
			wantDeleted: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteExpired(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.DeleteExpired(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantDeleted, result.Deleted)
			}
		})
	}
}
