package router

import (
	"beautyhub/internal/handlers/account"
	"beautyhub/internal/handlers/availability"
	"beautyhub/internal/handlers/cart"
	"beautyhub/internal/handlers/catalog"
	"beautyhub/internal/handlers/reservation"
	"beautyhub/internal/handlers/tenant"
	"beautyhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Account      account.Handler
	Tenant       tenant.Handler
	Catalog      catalog.Handler
	Availability availability.Handler
	Cart         cart.Handler
	Reservation  reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Tenant         middleware.Tenant
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Account.Router(routerGroup)
		r.DomainHandlers.Tenant.Router(routerGroup)

		routerGroup.Route("/shops/{slug}", func(shop chi.Router) {
			shop.Use(r.Tenant.Resolve)

			r.DomainHandlers.Tenant.ShopRouter(shop)
			r.DomainHandlers.Catalog.Router(shop)
			r.DomainHandlers.Availability.Router(shop)
			r.DomainHandlers.Cart.Router(shop)
			r.DomainHandlers.Reservation.Router(shop)
		})
	})
}

func New(domainHandlers DomainHandlers, tenant middleware.Tenant) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Tenant:         tenant,
	}
}
