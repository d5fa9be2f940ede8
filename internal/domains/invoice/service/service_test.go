package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	s3Mocks "inn/infras/s3/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	bookingModel "inn/internal/domains/booking/model"
	invoiceMocks "inn/internal/domains/invoice/mocks"
	"inn/internal/domains/invoice/model"
	"inn/internal/domains/invoice/model/dto"
	"inn/internal/domains/invoice/service"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
)

func newInvoiceService(ctrl *gomock.Controller) (
	service.Invoice,
	*invoiceMocks.MockInvoice,
	*bookingMocks.MockBooking,
	*s3Mocks.MockS3,
) {
	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(mockRepo, mockBookingRepo, mockS3, cfg, mockOtel)

	return svc, mockRepo, mockBookingRepo, mockS3
}

func TestInvoiceService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBookingRepo, mockS3 := newInvoiceService(ctrl)

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://test-bucket/invoices/archived.json", nil).
		AnyTimes()
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	booking := bookingModel.Booking{
		ID:          "booking-id",
		GuestName:   "John Doe",
		RoomNumber:  "B206",
		CheckIn:     timezone.Now().AddDate(0, 0, -2),
		CheckOut:    timezone.Now(),
		Status:      bookingModel.StatusCheckedOut,
		TotalAmount: 1380,
	}

	tests := []struct {
		name      string
		req       dto.GenerateInvoiceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTotal float64
	}{
		{
			name: "successful generation",
			req: dto.GenerateInvoiceRequest{
				BookingID: "booking-id",
				AdditionalCharges: []dto.ChargeRequest{
					{Description: "Minibar", Amount: 120},
				},
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTotal: 1500,
		},
		{
			name: "checked-in stay invoiced on arrival day bills one night",
			req:  dto.GenerateInvoiceRequest{BookingID: "booking-id"},
			setupMock: func() {
				open := booking
				open.Status = bookingModel.StatusCheckedIn
				open.CheckIn = timezone.Now()
				open.CheckOut = timezone.Now().AddDate(0, 0, 2)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(open, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTotal: 690,
		},
		{
			name: "booking not found",
			req:  dto.GenerateInvoiceRequest{BookingID: "missing"},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "unknown room category",
			req:  dto.GenerateInvoiceRequest{BookingID: "booking-id"},
			setupMock: func() {
				bad := booking
				bad.RoomNumber = "Z999"

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bad, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  dto.GenerateInvoiceRequest{BookingID: "booking-id"},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

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
			result, err := svc.Generate(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, booking.ID, result.BookingID)
				assert.Equal(t, booking.GuestName, result.GuestName)
				assert.Equal(t, tt.wantTotal, result.TotalAmount)
			}
		})
	}
}

func TestInvoiceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newInvoiceService(ctrl)

	invoices := []model.Invoice{
		{
			ID:          "invoice-id",
			BookingID:   "booking-id",
			GuestName:   "John Doe",
			RoomNumber:  "B206",
			TotalAmount: 1380,
			GeneratedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoices, nil)
			},
			wantErr:   false,
			wantTotal: 1,
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

			result, err := svc.GetAll(context.Background(), gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
