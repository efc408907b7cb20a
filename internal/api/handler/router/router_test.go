package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	middleware := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var instrumentedPath string
	rt := New(
		WithInstrumentation(func(method, path string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					instrumentedPath = method + " " + path
					next.ServeHTTP(w, r)
				})
			}
		}),
		WithRoutes(Route{
			Path:        "/api/items/:id",
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
			Middlewares: []func(http.Handler) http.Handler{middleware("primeiro"), middleware("segundo")},
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/42", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo"}, order)
	assert.Equal(t, "GET /api/items/:id", instrumentedPath)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/api/workflows",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inexistente", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/workflows", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMethodNotAllowed)
}
