package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

type VisibleAccountsRequest struct {
	Visible bool `json:"visible"`
}

func ListDateRanges(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"presets": service.DateRangePresets(),
			"default": domain.DefaultDateRangeID,
		})
	})
}

// GetDateRange resolve um preset; "custom" exige ?startDate e ?endDate
func GetDateRange(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		resolved, err := service.ResolveDateRange(id, query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resolved)
	})
}

func GetPreferences(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		prefs, err := service.GetPreferences(r.Context(), session.Email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, prefs)
	})
}

func UpdatePreferences(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var req domain.UpdatePreferencesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		prefs, err := service.UpdatePreferences(r.Context(), session.Email, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("user_email", session.Email).Info("preferences: preferências atualizadas")
		writeJSON(w, r, http.StatusOK, prefs)
	})
}

// ToggleVisibleAccount alterna a visibilidade de uma conta; a última visível não pode ser ocultada
func ToggleVisibleAccount(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		id := config.NormalizeCustomerID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, InvalidIDMessage, nil)
			return
		}

		result, err := service.ToggleAccountVisibility(r.Context(), session.Email, session.RefreshToken, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"customer_id": id,
			"changed":     result.Changed,
		}).Info("preferences: visibilidade alternada")
		writeJSON(w, r, http.StatusOK, result)
	})
}

// SetVisibleAccounts mostra todas as contas ({"visible": true}) ou só a primeira
func SetVisibleAccounts(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var req VisibleAccountsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		result, err := service.SetAllAccountsVisible(r.Context(), session.Email, session.RefreshToken, req.Visible)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// ListClients devolve as configurações de cliente e o cliente selecionado
func ListClients(service preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		selection, err := service.SelectClient(r.Context(), session.Email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if selection.Clients == nil {
			selection.Clients = []domain.ClientConfiguration{}
		}

		writeJSON(w, r, http.StatusOK, selection)
	})
}
