//go:build wireinject
// +build wireinject

package di

import (
	"beautyhub/config"
	"beautyhub/infras/jwt"
	"beautyhub/infras/kafka"
	"beautyhub/infras/metrics"
	"beautyhub/infras/otel"
	"beautyhub/infras/postgres"
	"beautyhub/infras/redis"
	"beautyhub/infras/s3"
	"beautyhub/permissions"
	"beautyhub/shared/cache"
	"beautyhub/transport/http"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/router"

	accountRepository "beautyhub/internal/domains/account/repository"
	accountService "beautyhub/internal/domains/account/service"
	availabilityService "beautyhub/internal/domains/availability/service"
	cartRepository "beautyhub/internal/domains/cart/repository"
	cartService "beautyhub/internal/domains/cart/service"
	catalogRepository "beautyhub/internal/domains/catalog/repository"
	catalogService "beautyhub/internal/domains/catalog/service"
	notificationService "beautyhub/internal/domains/notification/service"
	reservationRepository "beautyhub/internal/domains/reservation/repository"
	reservationService "beautyhub/internal/domains/reservation/service"
	tenantRepository "beautyhub/internal/domains/tenant/repository"
	tenantService "beautyhub/internal/domains/tenant/service"

	accountHandler "beautyhub/internal/handlers/account"
	availabilityHandler "beautyhub/internal/handlers/availability"
	cartHandler "beautyhub/internal/handlers/cart"
	catalogHandler "beautyhub/internal/handlers/catalog"
	reservationHandler "beautyhub/internal/handlers/reservation"
	tenantHandler "beautyhub/internal/handlers/tenant"

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
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewTenantMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
)

var tenantDomain = wire.NewSet(
	tenantRepository.New,
	tenantService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewStaff,
	catalogRepository.NewService,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	reservationRepository.New,
	notificationService.New,
	reservationService.New,
	availabilityService.New,
	wire.Value([]availabilityService.Option{}),
	cartRepository.New,
	cartService.New,
)

var domains = wire.NewSet(
	accountDomain,
	tenantDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	accountHandler.New,
	tenantHandler.New,
	catalogHandler.New,
	availabilityHandler.New,
	cartHandler.New,
	reservationHandler.New,
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
