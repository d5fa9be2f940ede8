package service

import (
	"context"
	"fmt"

	"inn/infras/otel"
	bookingModel "inn/internal/domains/booking/model"
	bookingRepo "inn/internal/domains/booking/repository"
	"inn/internal/domains/notification/model"
	"inn/internal/domains/notification/model/dto"
	"inn/internal/domains/notification/repository"
	reservationModel "inn/internal/domains/reservation/model"
	reservationRepo "inn/internal/domains/reservation/repository"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	GetAll(ctx context.Context) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Notification
	bookingRepo     bookingRepo.Booking
	reservationRepo reservationRepo.Reservation
	otel            otel.Otel
}

func New(
	repo repository.Notification,
	bookingRepo bookingRepo.Booking,
	reservationRepo reservationRepo.Reservation,
	otel otel.Otel,
) Notification {
	return &serviceImpl{
		repo:            repo,
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		otel:            otel,
	}
}

// GetAll returns the newest notifications for the dashboard feed. The guest
// and room snapshot on each entry is refreshed from the related booking or
// reservation so the feed never shows stale names after an edit. The feed is
// served straight from the database; caching it would defeat the refresh.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Page:    1,
		Limit:   constant.MaxFeedLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	notifications, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	for i := range notifications {
		s.refreshSnapshot(ctx, &notifications[i])
	}

	unreadCount, err := s.repo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusUnread,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return res, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	res.FromModels(notifications, unreadCount)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	update := map[string]any{
		model.FieldStatus:        model.StatusRead,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllNotificationsRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusUnread,
				Table:    model.TableName,
			},
		},
	}

	update := map[string]any{
		model.FieldStatus:        model.StatusRead,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications as read")

		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete notification")

		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// refreshSnapshot is best effort. A missing or unreadable related entity
// leaves the stored snapshot untouched.
func (s *serviceImpl) refreshSnapshot(ctx context.Context, notification *model.Notification) {
	if notification.RelatedID == nil || *notification.RelatedID == constant.Empty {
		return
	}

	switch notification.Type {
	case model.TypeBooking:
		booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(*notification.RelatedID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil || booking.ID == constant.Empty {
			return
		}

		notification.GuestName = &booking.GuestName
		notification.RoomNumber = &booking.RoomNumber
		notification.CheckIn = &booking.CheckIn
		notification.CheckOut = &booking.CheckOut
	case model.TypeReservation:
		reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(*notification.RelatedID, reservationModel.FieldReservationID, reservationModel.TableName))
		if err != nil || reservation.ReservationID == constant.Empty {
			return
		}

		notification.GuestName = &reservation.GuestName
		notification.RoomNumber = &reservation.RoomNumber
		notification.CheckIn = &reservation.CheckIn
		notification.CheckOut = &reservation.CheckOut
	}
}
