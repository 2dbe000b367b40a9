//go:build wireinject
// +build wireinject

package di

import (
	"pgms/config"
	"pgms/infras/broker"
	"pgms/infras/database"
	"pgms/infras/jwt"
	"pgms/infras/otel"
	"pgms/infras/redis"
	"pgms/infras/s3"
	"pgms/internal/tenancy/schema"
	"pgms/permissions"
	"pgms/shared/cache"
	"pgms/transport/http"
	"pgms/transport/http/middleware"
	"pgms/transport/http/router"

	adminRepository "pgms/internal/domains/admin/repository"
	adminService "pgms/internal/domains/admin/service"
	appointmentRepository "pgms/internal/domains/appointment/repository"
	appointmentService "pgms/internal/domains/appointment/service"
	authService "pgms/internal/domains/auth/service"
	occupantRepository "pgms/internal/domains/occupant/repository"
	occupantService "pgms/internal/domains/occupant/service"
	paymentRepository "pgms/internal/domains/payment/repository"
	paymentService "pgms/internal/domains/payment/service"
	roomRepository "pgms/internal/domains/room/repository"
	roomService "pgms/internal/domains/room/service"
	staffRepository "pgms/internal/domains/staff/repository"
	staffService "pgms/internal/domains/staff/service"
	subscriptionRepository "pgms/internal/domains/subscription/repository"
	subscriptionService "pgms/internal/domains/subscription/service"
	ticketRepository "pgms/internal/domains/ticket/repository"
	ticketService "pgms/internal/domains/ticket/service"

	adminHandler "pgms/internal/handlers/admin"
	appointmentHandler "pgms/internal/handlers/appointment"
	authHandler "pgms/internal/handlers/auth"
	occupantHandler "pgms/internal/handlers/occupant"
	operatorHandler "pgms/internal/handlers/operator"
	paymentHandler "pgms/internal/handlers/payment"
	roomHandler "pgms/internal/handlers/room"
	staffHandler "pgms/internal/handlers/staff"
	subscriptionHandler "pgms/internal/handlers/subscription"
	ticketHandler "pgms/internal/handlers/ticket"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	broker.New,
)

var tenancy = wire.NewSet(
	schema.NewProvisioner,
	tableChecker,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
	authService.New,
)

var hostelDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	occupantRepository.New,
	occupantService.New,
	staffRepository.New,
	staffService.New,
	paymentRepository.New,
	paymentService.New,
)

var platformDomain = wire.NewSet(
	subscriptionRepository.New,
	subscriptionService.New,
	ticketRepository.New,
	ticketService.New,
	appointmentRepository.New,
	appointmentService.New,
)

var domains = wire.NewSet(
	adminDomain,
	hostelDomain,
	platformDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	adminHandler.New,
	operatorHandler.New,
	roomHandler.New,
	occupantHandler.New,
	staffHandler.New,
	paymentHandler.New,
	subscriptionHandler.New,
	ticketHandler.New,
	appointmentHandler.New,
	router.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		tenancy,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
