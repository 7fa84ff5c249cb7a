//go:build wireinject
// +build wireinject

package di

import (
	"rental/config"
	"rental/infras/kafka"
	"rental/infras/mongodb"
	"rental/infras/otel"
	"rental/infras/redis"
	"rental/internal/notify"
	"rental/shared/cache"
	"rental/transport/http"
	"rental/transport/http/middleware"
	"rental/transport/http/router"

	bookingRepository "rental/internal/domains/booking/repository"
	bookingService "rental/internal/domains/booking/service"
	carRepository "rental/internal/domains/car/repository"
	carService "rental/internal/domains/car/service"

	bookingHandler "rental/internal/handlers/booking"
	carHandler "rental/internal/handlers/car"
	systemHandler "rental/internal/handlers/system"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongodb.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notify.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	carDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	systemHandler.New,
	carHandler.New,
	bookingHandler.New,
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
