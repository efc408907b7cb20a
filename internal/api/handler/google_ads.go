package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/reporting"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

func GetAccounts(reporter reporting.Reporter, preferrer preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok || !session.HasAdsCredentials() {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, middleware.NotAuthenticatedMessage, nil)
			return
		}

		dateRange, err := parseDateRange(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("startDate"),
				"end_date":   r.URL.Query().Get("endDate"),
			}).Warn("googleads: período inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, InvalidDateMessage, nil)
			return
		}

		summary, err := reporter.GetAccountsSummary(r.Context(), session.RefreshToken, dateRange)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if err := preferrer.ApplyVisibility(r.Context(), session.Email, summary); err != nil {
			logger.WithError(err).Warn("googleads: preferências de visibilidade indisponíveis")
		}

		logger.WithFields(log.Fields{
			"total_accounts": summary.TotalAccounts,
			"total_alerts":   summary.TotalAlerts,
		}).Info("googleads: contas carregadas")

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetAccountDetail(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok || !session.HasAdsCredentials() {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, middleware.NotAuthenticatedMessage, nil)
			return
		}

		id := config.NormalizeCustomerID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, InvalidIDMessage, nil)
			return
		}

		dateRange, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, InvalidDateMessage, nil)
			return
		}

		detail, err := reporter.GetAccountDetail(r.Context(), session.RefreshToken, id, dateRange)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithField("customer_id", id).Info("googleads: detalhe da conta carregado")
		writeJSON(w, r, http.StatusOK, detail)
	})
}
