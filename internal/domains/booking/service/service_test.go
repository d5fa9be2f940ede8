package service_test

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	notifMocks "inn/internal/domains/notification/mocks"
	roomMocks "inn/internal/domains/room/mocks"
	roomModel "inn/internal/domains/room/model"
	eventMocks "inn/internal/events/mocks"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func newBookingService(ctrl *gomock.Controller) (
	service.Booking,
	*bookingMocks.MockBooking,
	*roomMocks.MockRoom,
	*notifMocks.MockNotification,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockNotifRepo := notifMocks.NewMockNotification(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockPublisher.EXPECT().PublishLifecycle(gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockNotifRepo, mockPublisher, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockNotifRepo, mockCache
}

// newTestTx hands out a transaction backed by sqlmock so the service can
// commit or roll back for real while the repositories stay mocked.
func newTestTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dbMock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx, dbMock
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.QuoteBookingRequest
		wantErr   bool
		wantCode  int
		wantTotal float64
	}{
		{
			name: "single room by room number",
			req: dto.QuoteBookingRequest{
				RoomNumber: "B206",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			wantTotal: 1380,
		},
		{
			name: "double room by type with additional charges",
			req: dto.QuoteBookingRequest{
				RoomType: "double",
				CheckIn:  "2026-09-10",
				CheckOut: "2026-09-12",
				AdditionalCharges: []dto.ChargeRequest{
					{Description: "Breakfast", Amount: 150},
				},
			},
			wantTotal: 2850,
		},
		{
			name: "event hall same day counts one day",
			req: dto.QuoteBookingRequest{
				RoomNumber: "E601",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-10",
			},
			wantTotal: 5000,
		},
		{
			name: "dorm below minimum stay",
			req: dto.QuoteBookingRequest{
				RoomNumber: "A101",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-20",
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "unknown room type",
			req: dto.QuoteBookingRequest{
				RoomType: "penthouse",
				CheckIn:  "2026-09-10",
				CheckOut: "2026-09-12",
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "check-out before check-in",
			req: dto.QuoteBookingRequest{
				RoomNumber: "B206",
				CheckIn:    "2026-09-12",
				CheckOut:   "2026-09-10",
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "invalid date format",
			req: dto.QuoteBookingRequest{
				RoomNumber: "B206",
				CheckIn:    "10/09/2026",
				CheckOut:   "12/09/2026",
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.Total)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockNotifRepo, _ := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "B206",
				CheckIn:    "not-a-date",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown room category",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "Z999",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "transaction begin error",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "B206",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "B299",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "occupied room returns conflict and stays untouched",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "B206",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(roomModel.Room{
						RoomNumber: "B206",
						Status:     roomModel.StatusOccupied,
						GuestName:  "Jane Roe",
					}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "successful create occupies the room",
			req: dto.CreateBookingRequest{
				GuestName:  "John Doe",
				RoomNumber: "B206",
				CheckIn:    "2026-09-10",
				CheckOut:   "2026-09-12",
			},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRoomRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(roomModel.Room{
						RoomNumber: "B206",
						Status:     roomModel.StatusAvailable,
					}, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusOccupied, update[roomModel.FieldStatus])
						assert.Equal(t, "John Doe", update[roomModel.FieldGuestName])

						return nil
					})

				mockNotifRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "test-user")
			_, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newBookingService(ctrl)

	bookings := []model.Booking{
		{
			ID:         "booking-id",
			GuestName:  "John Doe",
			RoomNumber: "B206",
			CheckIn:    timezone.Now(),
			CheckOut:   timezone.Now().AddDate(0, 0, 2),
			Status:     model.StatusConfirmed,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			params := gDto.QueryParams{Page: 1, Limit: 10}
			result, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newBookingService(ctrl)

	booking := model.Booking{
		ID:         "booking-id",
		GuestName:  "John Doe",
		RoomNumber: "B206",
		Status:     model.StatusConfirmed,
		CheckIn:    timezone.Now(),
		CheckOut:   timezone.Now().AddDate(0, 0, 2),
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
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "booking-id",
		},
		{
			name: "booking not found",
			id:   "missing",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
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
				assert.Equal(t, 404, failure.GetCode(err))
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockNotifRepo, _ := newBookingService(ctrl)

	confirmed := model.Booking{
		ID:         "booking-id",
		GuestName:  "John Doe",
		RoomNumber: "B206",
		Status:     model.StatusConfirmed,
		CheckIn:    timezone.Now(),
		CheckOut:   timezone.Now().AddDate(0, 0, 2),
	}

	checkedIn := confirmed
	checkedIn.Status = model.StatusCheckedIn

	tests := []struct {
		name      string
		req       dto.UpdateBookingStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "transaction begin error",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusCheckedIn},
			setupMock: func() {
				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "cancelling a confirmed booking releases the room",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, update[model.FieldStatus])

						return nil
					})

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusAvailable, update[roomModel.FieldStatus])
						assert.Equal(t, constant.Empty, update[roomModel.FieldGuestName])

						return nil
					})

				mockNotifRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "checking in mirrors occupancy onto the room",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusCheckedIn},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusOccupied, update[roomModel.FieldStatus])
						assert.Equal(t, confirmed.GuestName, update[roomModel.FieldGuestName])

						return nil
					})

				mockNotifRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "checked-in booking cannot be cancelled",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(checkedIn, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				tx, dbMock := newTestTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					GetForUpdate(gomock.Any(), tx, gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "test-user")
			err := svc.UpdateStatus(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
