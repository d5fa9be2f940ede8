package service

import (
	"context"
	"encoding/json"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/s3"
	bookingModel "inn/internal/domains/booking/model"
	bookingRepo "inn/internal/domains/booking/repository"
	"inn/internal/domains/invoice/model"
	"inn/internal/domains/invoice/model/dto"
	"inn/internal/domains/invoice/repository"
	"inn/internal/pricing"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const archiveDirectory = "invoices"

type Invoice interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (dto.InvoiceResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
}

type serviceImpl struct {
	repo        repository.Invoice
	bookingRepo bookingRepo.Booking
	s3          s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Invoice,
	bookingRepo bookingRepo.Booking,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Invoice {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		s3:          s3,
		cfg:         cfg,
		otel:        otel,
	}
}

// Generate prices a booking through the shared engine and persists the
// result as an immutable snapshot. A JSON copy is archived to S3 after the
// insert; archival failures never fail the invoice.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for invoice")

		return res, fmt.Errorf("failed to get booking for invoice: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	category, err := pricing.CategoryFromRoomNumber(booking.RoomNumber)
	if err != nil {
		return res, failure.BadRequestFromString("invalid room type") // nolint:wrapcheck
	}

	charges := req.Charges()

	// An open stay is billed up to the moment of generation, with the
	// duration floored at one unit so a guest invoiced on the arrival day
	// still owes one night.
	checkOut := booking.CheckOut

	var quote pricing.Quote

	if booking.Status == bookingModel.StatusCheckedIn {
		checkOut = timezone.Now()
		quote, err = pricing.QuoteOpenStay(category, booking.CheckIn, checkOut, charges)
	} else {
		quote, err = pricing.QuoteStay(category, booking.CheckIn, checkOut, charges)
	}

	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	invoice := model.Invoice{
		ID:                uuid.NewString(),
		BookingID:         booking.ID,
		GuestName:         booking.GuestName,
		RoomNumber:        booking.RoomNumber,
		Category:          quote.Category,
		CheckIn:           booking.CheckIn,
		CheckOut:          checkOut,
		BillingUnit:       string(quote.Unit),
		BaseRate:          quote.BaseRate,
		Duration:          quote.Duration,
		AdditionalCharges: model.ChargeList(charges),
		AdditionalTotal:   quote.AdditionalTotal,
		TotalAmount:       quote.Total,
		GeneratedAt:       timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, invoice); err != nil {
		log.Error().Err(err).Msg("failed to create invoice")

		return res, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.archiveInvoice(ctx, invoice)

	res.FromModel(invoice)

	return res, nil
}

// GetAll returns the newest invoices matching the filter, capped at the feed
// limit. Invoice history is unpaged.
func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoices")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.MaxFeedLimit,
		SortBy:  model.FieldGeneratedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	invoices, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(invoices)

	return res, nil
}

func (s *serviceImpl) archiveInvoice(ctx context.Context, invoice model.Invoice) {
	go func() {
		c := context.WithoutCancel(ctx)

		encoded, err := json.Marshal(invoice)
		if err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to marshal invoice for archive")

			return
		}

		url, err := s.s3.UploadFileBytes(c, s.cfg.External.S3.BucketName, archiveDirectory,
			invoice.ID+".json", constant.ContentTypeJSON, encoded)
		if err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to archive invoice to s3")

			return
		}

		update := map[string]any{
			model.FieldArchiveURL:    url,
			constant.FieldModifiedAt: timezone.Now(),
		}

		filter := shared.FilterByID(invoice.ID, model.FieldID, model.TableName)
		if err := s.repo.Update(c, update, filter); err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to record invoice archive url")
		}
	}()
}
