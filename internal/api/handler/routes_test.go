package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/accolades/ads-dashboard-api/internal/api/handler/router"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_Register(t *testing.T) {
	cfg := testConfig()

	groups := [][]router.Route{
		Healthcheck(nil),
		Authentication(nil, nil, cfg),
		GoogleAds(nil, nil),
		NocoDB(nil),
		Workflows(nil),
		Preferences(nil),
		SearchTerms(nil, nil),
		CronJobs(CronJobServices{}),
	}

	var all []router.Route
	for _, group := range groups {
		all = append(all, group...)
	}

	var rt router.Router
	assert.NotPanics(t, func() {
		rt = router.New(router.WithRoutes(all...))
	})

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/session"},
		{http.MethodGet, "/api/google-ads/accounts"},
		{http.MethodGet, "/api/nocodb?table=campaigns"},
		{http.MethodPost, "/api/trigger"},
		{http.MethodGet, "/api/preferences"},
		{http.MethodPost, "/api/preferences/visible-accounts/123/toggle"},
		{http.MethodGet, "/api/search-terms"},
		{http.MethodGet, "/v1/cron/status"},
	}

	for _, route := range protected {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}
