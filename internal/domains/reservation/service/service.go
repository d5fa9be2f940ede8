package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inn/config"
	"inn/infras/otel"
	notifModel "inn/internal/domains/notification/model"
	notifRepo "inn/internal/domains/notification/repository"
	"inn/internal/domains/reservation/model"
	"inn/internal/domains/reservation/model/dto"
	"inn/internal/domains/reservation/repository"
	"inn/internal/events"
	"inn/internal/pricing"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation = "reservation:get"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, reservationID string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, reservationID string) error
	DeleteExpired(ctx context.Context) (dto.DeleteExpiredResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	notifRepo notifRepo.Notification
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	notifRepo notifRepo.Notification,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		notifRepo: notifRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create places a soft hold. Reservations never touch room state; the hold
// only blocks reuse of the client-chosen reservation id and carries an
// expiry date for the sweep.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	category, err := pricing.CategoryFromRoomType(req.RoomType)
	if err != nil {
		return res, failure.BadRequestFromString("invalid room type") // nolint:wrapcheck
	}

	if _, err = pricing.Duration(category, checkIn, checkOut); err != nil {
		return res, stayFailure(err) // nolint:wrapcheck
	}

	filter := shared.FilterByID(req.ReservationID, model.FieldReservationID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("reservation id already exists") // nolint:wrapcheck
	}

	expiryDate := timezone.Now().Add(time.Duration(s.cfg.Hotel.ReservationHoldHours) * time.Hour)
	reservation := req.ToModel(user, checkIn, checkOut, expiryDate)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	notification := s.buildNotification(reservation, "New Reservation",
		fmt.Sprintf("Reservation %s placed by %s for a %s", reservation.ReservationID, reservation.GuestName, reservation.RoomType),
		notifModel.PriorityMedium, user)

	if err = s.notifRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create reservation notification")

		return res, fmt.Errorf("failed to create reservation notification: %w", err)
	}

	s.afterReservationChange(ctx, reservation.ReservationID, events.LifecycleEvent{
		Entity:     events.EntityReservation,
		ID:         reservation.ReservationID,
		RoomNumber: reservation.RoomNumber,
		GuestName:  reservation.GuestName,
		Status:     reservation.Status,
		OccurredAt: timezone.Now(),
	})

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, reservationID string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, reservationID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldReservationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ReservationID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, reservationID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservationStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(reservationID, model.FieldReservationID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ReservationID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	update := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	priority := notifModel.PriorityMedium
	if req.Status == model.StatusCancelled {
		priority = notifModel.PriorityHigh
	}

	notification := s.buildNotification(reservation, "Reservation "+req.Status,
		fmt.Sprintf("Reservation %s for %s is now %s", reservation.ReservationID, reservation.GuestName, req.Status),
		priority, user)

	if err = s.notifRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create reservation notification")

		return fmt.Errorf("failed to create reservation notification: %w", err)
	}

	s.afterReservationChange(ctx, reservationID, events.LifecycleEvent{
		Entity:     events.EntityReservation,
		ID:         reservationID,
		RoomNumber: reservation.RoomNumber,
		GuestName:  reservation.GuestName,
		Status:     req.Status,
		OccurredAt: timezone.Now(),
	})

	return nil
}

// DeleteExpired sweeps pending reservations whose expiry date has passed.
// Expiry is lazy: nothing runs in the background, callers trigger the sweep.
func (s *serviceImpl) DeleteExpired(ctx context.Context) (res dto.DeleteExpiredResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteExpiredReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.DeleteExpired(ctx, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to delete expired reservations")

		return res, fmt.Errorf("failed to delete expired reservations: %w", err)
	}

	if deleted > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetReservation)
		}()
	}

	res.Deleted = deleted

	return res, nil
}

func (s *serviceImpl) buildNotification(reservation model.Reservation, title, message, priority, user string) notifModel.Notification {
	relatedID := reservation.ReservationID
	guestName := reservation.GuestName
	roomNumber := reservation.RoomNumber
	checkIn := reservation.CheckIn
	checkOut := reservation.CheckOut

	return notifModel.Notification{
		ID:         uuid.NewString(),
		Type:       notifModel.TypeReservation,
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

func (s *serviceImpl) afterReservationChange(ctx context.Context, reservationID string, event events.LifecycleEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, reservationID)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		s.publisher.PublishLifecycle(c, event)
	}()
}

func stayFailure(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return failure.BadRequestFromString("invalid date range")
	case errors.Is(err, pricing.ErrMinimumStayNotMet):
		return failure.BadRequestFromString("dorm reservations require a stay of at least 30 days")
	}

	return failure.BadRequest(err)
}
