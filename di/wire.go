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
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	cashbookRepository "inn/internal/domains/cashbook/repository"
	cashbookService "inn/internal/domains/cashbook/service"
	categoryRepository "inn/internal/domains/category/repository"
	housekeepingRepository "inn/internal/domains/housekeeping/repository"
	housekeepingService "inn/internal/domains/housekeeping/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"

	bookingHandler "inn/internal/handlers/booking"
	cashbookHandler "inn/internal/handlers/cashbook"
	roomHandler "inn/internal/handlers/room"

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
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	categoryRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var cashbookDomain = wire.NewSet(
	cashbookRepository.New,
	cashbookService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	housekeepingDomain,
	cashbookDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	cashbookHandler.New,
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
