package router

import (
	"rental/internal/handlers/booking"
	"rental/internal/handlers/car"
	"rental/internal/handlers/system"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	System  system.Handler
	Car     car.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.System.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Car.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
