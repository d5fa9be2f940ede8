//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/internal/events"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	invoiceRepository "inn/internal/domains/invoice/repository"
	invoiceService "inn/internal/domains/invoice/service"
	notificationRepository "inn/internal/domains/notification/repository"
	notificationService "inn/internal/domains/notification/service"
	reservationRepository "inn/internal/domains/reservation/repository"
	reservationService "inn/internal/domains/reservation/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	staffRequestRepository "inn/internal/domains/staffrequest/repository"
	staffRequestService "inn/internal/domains/staffrequest/service"

	authService "inn/internal/domains/auth/service"
	userRepository "inn/internal/domains/user/repository"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	invoiceHandler "inn/internal/handlers/invoice"
	notificationHandler "inn/internal/handlers/notification"
	reservationHandler "inn/internal/handlers/reservation"
	roomHandler "inn/internal/handlers/room"
	staffRequestHandler "inn/internal/handlers/staffrequest"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var staffRequestDomain = wire.NewSet(
	staffRequestRepository.New,
	staffRequestService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	reservationDomain,
	notificationDomain,
	staffRequestDomain,
	invoiceDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	reservationHandler.New,
	notificationHandler.New,
	staffRequestHandler.New,
	invoiceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
