package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/api/handler/router"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/reporting"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
)

var (
	sessionOnly = []func(http.Handler) http.Handler{middleware.RequireSession()}
	adsOnly     = []func(http.Handler) http.Handler{middleware.RequireAdsCredentials()}
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, workspaces WorkspaceForgetter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodGet,
			Handler: AuthLogin(service, cfg),
		},
		{
			Path:    "/api/auth/callback",
			Method:  http.MethodGet,
			Handler: AuthCallback(service, cfg),
		},
		{
			Path:        "/api/auth/session",
			Method:      http.MethodGet,
			Handler:     AuthSession(),
			Middlewares: sessionOnly,
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: AuthLogout(service, workspaces, cfg),
		},
	}
}

func GoogleAds(reporter reporting.Reporter, preferrer preferring.Preferrer) []router.Route {
	return []router.Route{
		{
			Path:        "/api/google-ads/accounts",
			Method:      http.MethodGet,
			Handler:     GetAccounts(reporter, preferrer),
			Middlewares: adsOnly,
		},
		{
			Path:        "/api/google-ads/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAccountDetail(reporter),
			Middlewares: adsOnly,
		},
	}
}

func NocoDB(service tabling.Tabler) []router.Route {
	return []router.Route{
		{
			Path:        "/api/nocodb",
			Method:      http.MethodGet,
			Handler:     ListRecords(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/nocodb",
			Method:      http.MethodPost,
			Handler:     CreateRecord(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/nocodb",
			Method:      http.MethodPatch,
			Handler:     UpdateRecord(service),
			Middlewares: sessionOnly,
		},
	}
}

func Workflows(service triggering.Triggerer) []router.Route {
	return []router.Route{
		{
			Path:        "/api/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerWorkflow(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/workflows",
			Method:      http.MethodGet,
			Handler:     ListWorkflows(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/workflows/runs",
			Method:      http.MethodGet,
			Handler:     ListWorkflowRuns(service),
			Middlewares: sessionOnly,
		},
	}
}

func Preferences(service preferring.Preferrer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/date-ranges",
			Method:  http.MethodGet,
			Handler: ListDateRanges(service),
		},
		{
			Path:    "/api/date-ranges/:id",
			Method:  http.MethodGet,
			Handler: GetDateRange(service),
		},
		{
			Path:        "/api/preferences",
			Method:      http.MethodGet,
			Handler:     GetPreferences(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/preferences",
			Method:      http.MethodPut,
			Handler:     UpdatePreferences(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/preferences/visible-accounts",
			Method:      http.MethodPost,
			Handler:     SetVisibleAccounts(service),
			Middlewares: adsOnly,
		},
		{
			Path:        "/api/preferences/visible-accounts/:id/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleVisibleAccount(service),
			Middlewares: adsOnly,
		},
		{
			Path:        "/api/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: sessionOnly,
		},
	}
}

func SearchTerms(service triaging.Triager, preferrer preferring.Preferrer) []router.Route {
	return []router.Route{
		{
			Path:        "/api/search-terms",
			Method:      http.MethodGet,
			Handler:     GetSearchTerms(service, preferrer),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/actions",
			Method:      http.MethodPost,
			Handler:     SetSearchTermActions(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/selection",
			Method:      http.MethodPost,
			Handler:     SelectSearchTerms(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/mark-non-relevant",
			Method:      http.MethodPost,
			Handler:     MarkNonRelevantSearchTerms(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/step",
			Method:      http.MethodPost,
			Handler:     SetSearchTermsStep(service),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/submit",
			Method:      http.MethodPost,
			Handler:     SubmitExclusions(service, preferrer),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/api/search-terms/workspace",
			Method:      http.MethodDelete,
			Handler:     ResetSearchTermsWorkspace(service),
			Middlewares: sessionOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: sessionOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: sessionOnly,
		},
	}
}
