package service

import (
	"context"
	"errors"
	"fmt"
	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	notifModel "inn/internal/domains/notification/model"
	notifRepo "inn/internal/domains/notification/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/internal/events"
	"inn/internal/pricing"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheGetAllRoom    = "room:gets"
	cacheGetRoom       = "room:get"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteBookingRequest) (dto.QuoteBookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	notifRepo notifRepo.Notification
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	notifRepo notifRepo.Notification,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		notifRepo: notifRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Quote prices a stay without touching any state. The guest-facing estimate,
// the payment summary and invoice generation all go through the same engine.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteBookingRequest) (res dto.QuoteBookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse quote dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	charges := make([]pricing.Charge, len(req.AdditionalCharges))
	for i, charge := range req.AdditionalCharges {
		charges[i] = pricing.Charge{Description: charge.Description, Amount: charge.Amount}
	}

	var quote pricing.Quote

	if req.RoomNumber != constant.Empty {
		quote, err = pricing.QuoteStayByRoomNumber(req.RoomNumber, checkIn, checkOut, charges)
	} else {
		var category string

		category, err = pricing.CategoryFromRoomType(req.RoomType)
		if err == nil {
			quote, err = pricing.QuoteStay(category, checkIn, checkOut, charges)
		}
	}

	if err != nil {
		return res, pricingFailure(err) // nolint:wrapcheck
	}

	res = dto.QuoteBookingResponse{
		Category:        quote.Category,
		Duration:        quote.Duration,
		BillingUnit:     string(quote.Unit),
		BaseRate:        quote.BaseRate,
		AdditionalTotal: quote.AdditionalTotal,
		Total:           quote.Total,
	}

	return res, nil
}

// Create prices the stay, then books the room inside one transaction: the
// room row is locked, checked for availability, the booking is inserted and
// the room flipped to occupied. Two concurrent requests for the same room
// cannot both succeed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	quote, err := pricing.QuoteStayByRoomNumber(req.RoomNumber, checkIn, checkOut, nil)
	if err != nil {
		return res, pricingFailure(err) // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, quote.Total)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return res, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer rollbackOnError(tx, &err)

	roomFilter := shared.FilterByID(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)

	room, err := s.roomRepo.GetForUpdate(ctx, tx, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock room")

		return res, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	roomUpdate := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusOccupied,
		roomModel.FieldGuestName: booking.GuestName,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.roomRepo.UpdateTx(ctx, tx, roomUpdate, roomFilter); err != nil {
		log.Error().Err(err).Msg("failed to occupy room")

		return res, fmt.Errorf("failed to occupy room: %w", err)
	}

	notification := s.buildNotification(booking, "New Booking",
		fmt.Sprintf("Booking created for %s in room %s", booking.GuestName, booking.RoomNumber),
		notifModel.PriorityMedium, user)

	if err = s.notifRepo.InsertTx(ctx, tx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create booking notification")

		return res, fmt.Errorf("failed to create booking notification: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transaction")

		return res, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	s.afterBookingChange(ctx, booking.ID, booking.RoomNumber, events.LifecycleEvent{
		Entity:     events.EntityBooking,
		ID:         booking.ID,
		RoomNumber: booking.RoomNumber,
		GuestName:  booking.GuestName,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// UpdateStatus walks the booking state machine. Check-in and check-out
// mirror the transition onto the room row, and cancellation releases the
// room, all inside the same transaction as the booking update.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin status transaction")

		return fmt.Errorf("failed to begin status transaction: %w", err)
	}

	defer rollbackOnError(tx, &err)

	booking, err := s.repo.GetForUpdate(ctx, tx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock booking")

		return fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.CanTransitionTo(req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	bookingUpdate := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, tx, bookingUpdate, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if err = s.applyRoomSideEffect(ctx, tx, booking, req.Status, user); err != nil {
		return err
	}

	notification := s.buildNotification(booking, statusTitle(req.Status),
		statusMessage(booking, req.Status), statusPriority(req.Status), user)

	if err = s.notifRepo.InsertTx(ctx, tx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create status notification")

		return fmt.Errorf("failed to create status notification: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit status transaction")

		return fmt.Errorf("failed to commit status transaction: %w", err)
	}

	s.afterBookingChange(ctx, booking.ID, booking.RoomNumber, events.LifecycleEvent{
		Entity:     events.EntityBooking,
		ID:         booking.ID,
		RoomNumber: booking.RoomNumber,
		GuestName:  booking.GuestName,
		Status:     req.Status,
		OccurredAt: timezone.Now(),
	})

	return nil
}

// Delete removes a booking entirely. An active booking releases its room on
// the way out.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin delete transaction")

		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}

	defer rollbackOnError(tx, &err)

	booking, err := s.repo.GetForUpdate(ctx, tx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock booking")

		return fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if booking.Status == model.StatusConfirmed || booking.Status == model.StatusCheckedIn {
		if err = s.releaseRoom(ctx, tx, booking.RoomNumber, user); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit delete transaction")

		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	s.afterBookingChange(ctx, booking.ID, booking.RoomNumber, events.LifecycleEvent{
		Entity:     events.EntityBooking,
		ID:         booking.ID,
		RoomNumber: booking.RoomNumber,
		GuestName:  booking.GuestName,
		Status:     "deleted",
		OccurredAt: timezone.Now(),
	})

	return nil
}

func (s *serviceImpl) applyRoomSideEffect(ctx context.Context, tx *sqlx.Tx, booking model.Booking, status, user string) error {
	roomFilter := shared.FilterByID(booking.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)

	switch status {
	case model.StatusCheckedIn:
		roomUpdate := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			roomModel.FieldGuestName: booking.GuestName,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomUpdate, roomFilter); err != nil {
			log.Error().Err(err).Msg("failed to occupy room")

			return fmt.Errorf("failed to occupy room: %w", err)
		}
	case model.StatusCheckedOut, model.StatusCancelled:
		if err := s.releaseRoom(ctx, tx, booking.RoomNumber, user); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) releaseRoom(ctx context.Context, tx *sqlx.Tx, roomNumber, user string) error {
	roomFilter := shared.FilterByID(roomNumber, roomModel.FieldRoomNumber, roomModel.TableName)

	roomUpdate := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusAvailable,
		roomModel.FieldGuestName: constant.Empty,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, roomUpdate, roomFilter); err != nil {
		log.Error().Err(err).Msg("failed to release room")

		return fmt.Errorf("failed to release room: %w", err)
	}

	return nil
}

func (s *serviceImpl) buildNotification(booking model.Booking, title, message, priority, user string) notifModel.Notification {
	relatedID := booking.ID
	guestName := booking.GuestName
	roomNumber := booking.RoomNumber
	checkIn := booking.CheckIn
	checkOut := booking.CheckOut

	return notifModel.Notification{
		ID:         uuid.NewString(),
		Type:       notifModel.TypeBooking,
		Title:      title,
		Message:    message,
		Status:     notifModel.StatusUnread,
		Priority:   priority,
		RelatedID:  &relatedID,
		GuestName:  &guestName,
		RoomNumber: &roomNumber,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (s *serviceImpl) afterBookingChange(ctx context.Context, id, roomNumber string, event events.LifecycleEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomNumber)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)

		s.publisher.PublishLifecycle(c, event)
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func rollbackOnError(tx *sqlx.Tx, err *error) {
	if *err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}
	}
}

func pricingFailure(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidRoomType):
		return failure.BadRequestFromString("invalid room type")
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return failure.BadRequestFromString("invalid date range")
	case errors.Is(err, pricing.ErrMinimumStayNotMet):
		return failure.BadRequestFromString("dorm bookings require a stay of at least 30 days")
	}

	return failure.BadRequest(err)
}

func statusTitle(status string) string {
	switch status {
	case model.StatusConfirmed:
		return "Booking Confirmed"
	case model.StatusCheckedIn:
		return "Guest Checked In"
	case model.StatusCheckedOut:
		return "Guest Checked Out"
	case model.StatusCancelled:
		return "Booking Cancelled"
	}

	return "Booking Updated"
}

func statusMessage(booking model.Booking, status string) string {
	switch status {
	case model.StatusConfirmed:
		return fmt.Sprintf("Booking confirmed for %s in room %s", booking.GuestName, booking.RoomNumber)
	case model.StatusCheckedIn:
		return fmt.Sprintf("%s has checked in to room %s", booking.GuestName, booking.RoomNumber)
	case model.StatusCheckedOut:
		return fmt.Sprintf("%s has checked out of room %s", booking.GuestName, booking.RoomNumber)
	case model.StatusCancelled:
		return fmt.Sprintf("Booking for %s in room %s was cancelled", booking.GuestName, booking.RoomNumber)
	}

	return fmt.Sprintf("Booking for %s in room %s is now %s", booking.GuestName, booking.RoomNumber, status)
}

func statusPriority(status string) string {
	if status == model.StatusCancelled {
		return notifModel.PriorityHigh
	}

	return notifModel.PriorityMedium
}
