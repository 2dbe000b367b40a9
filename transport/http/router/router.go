package router

import (
	"pgms/internal/handlers/admin"
	"pgms/internal/handlers/appointment"
	"pgms/internal/handlers/auth"
	"pgms/internal/handlers/occupant"
	"pgms/internal/handlers/operator"
	"pgms/internal/handlers/payment"
	"pgms/internal/handlers/room"
	"pgms/internal/handlers/staff"
	"pgms/internal/handlers/subscription"
	"pgms/internal/handlers/ticket"
	"pgms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Admin        admin.Handler
	Operator     operator.Handler
	Room         room.Handler
	Occupant     occupant.Handler
	Staff        staff.Handler
	Payment      payment.Handler
	Subscription subscription.Handler
	Ticket       ticket.Handler
	Appointment  appointment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts everything under /v1. Operator routes accept only the API
// key; all others go through token auth, which skips the routes marked public
// in permissions.json.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AuthRole.APIKey)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(internal chi.Router) {
			internal.Use(r.AuthRole.InternalOnly)
			r.DomainHandlers.Operator.Router(internal)
		})

		routerGroup.Group(func(tenant chi.Router) {
			tenant.Use(r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Auth.Router(tenant)
			r.DomainHandlers.Admin.Router(tenant)
			r.DomainHandlers.Room.Router(tenant)
			r.DomainHandlers.Occupant.Router(tenant)
			r.DomainHandlers.Staff.Router(tenant)
			r.DomainHandlers.Payment.Router(tenant)
			r.DomainHandlers.Subscription.Router(tenant)
			r.DomainHandlers.Ticket.Router(tenant)
			r.DomainHandlers.Appointment.Router(tenant)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
