package router

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

const (
	routeNotFoundMessage    = "Route introuvable"
	methodNotAllowedMessage = "Méthode non autorisée"
)

// Route é uma rota com seus middlewares, aplicados na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router     *httprouter.Router
	instrument func(method, path string) func(http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithInstrumentation envolve cada rota com um middleware que recebe o
// padrão da rota (ex: /api/google-ads/accounts/:id). Deve vir antes de WithRoutes.
func WithInstrumentation(instrument func(method, path string) func(http.Handler) http.Handler) ConfigRouter {
	return func(router *Router) {
		router.instrument = instrument
	}
}

// New cria o router; rotas e métodos inexistentes respondem no formato de erro da API
func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, routeNotFoundMessage, nil)
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, methodNotAllowedMessage, nil)
	})

	router := &Router{router: hr}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; a instrumentação fica por fora dos middlewares da rota
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if r.instrument != nil {
			handler = r.instrument(route.Method, route.Path)(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
