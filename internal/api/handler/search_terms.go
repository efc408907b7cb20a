package handler

import (
	"net/http"
	"strconv"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
)

type StepRequest struct {
	Step domain.TriageStep `json:"step"`
}

// GetSearchTerms devolve a visão de triagem: ?filter, q, sort, dir, refresh
func GetSearchTerms(service triaging.Triager, preferrer preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		refresh := false
		if raw := r.URL.Query().Get("refresh"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Paramètre refresh invalide", nil)
				return
			}
			refresh = parsed
		}

		snapshot, err := service.View(r.Context(), session.ID, triaging.ViewRequest{
			View:             viewFromQuery(r),
			Refresh:          refresh,
			SelectedClientID: selectedClientID(r, preferrer, session),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func SetSearchTermActions(service triaging.Triager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var req triaging.ActionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		snapshot, err := service.SetActions(r.Context(), session.ID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func SelectSearchTerms(service triaging.Triager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var req triaging.SelectionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		snapshot, err := service.Select(r.Context(), session.ID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func MarkNonRelevantSearchTerms(service triaging.Triager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		marked, snapshot, err := service.MarkNonRelevant(r.Context(), session.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("marked", marked).Info("searchterms: termos não relevantes marcados")
		writeJSON(w, r, http.StatusOK, map[string]any{
			"marked":    marked,
			"workspace": snapshot,
		})
	})
}

func SetSearchTermsStep(service triaging.Triager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())

		var req StepRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		snapshot, err := service.SetStep(r.Context(), session.ID, req.Step)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// SubmitExclusions envia os termos marcados ao workflow de negativação
func SubmitExclusions(service triaging.Triager, preferrer preferring.Preferrer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		session, _ := middleware.SessionFromContext(r.Context())

		var req triaging.SubmitRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}
		req.TriggeredBy = session.Email
		req.SelectedClientID = selectedClientID(r, preferrer, session)

		result, err := service.Submit(r.Context(), session.ID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"count": result.Count,
			"level": result.Level,
		}).Info("searchterms: exclusões enviadas")
		writeJSON(w, r, http.StatusOK, result)
	})
}

func ResetSearchTermsWorkspace(service triaging.Triager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := middleware.SessionFromContext(r.Context())
		service.ResetWorkspace(session.ID)

		writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
	})
}

// viewFromQuery devolve nil quando nenhum parâmetro de visão foi enviado,
// mantendo a visão atual do workspace
func viewFromQuery(r *http.Request) *domain.TriageView {
	query := r.URL.Query()
	if !query.Has("filter") && !query.Has("q") && !query.Has("sort") && !query.Has("dir") {
		return nil
	}

	view := domain.DefaultTriageView()
	if filter := query.Get("filter"); filter != "" {
		view.Filter = domain.TriageFilter(filter)
	}
	view.Query = query.Get("q")
	if sort := query.Get("sort"); sort != "" {
		view.SortField = domain.TriageSortField(sort)
	}
	if dir := query.Get("dir"); dir != "" {
		view.SortDirection = domain.SortDirection(dir)
	}

	return &view
}

func selectedClientID(r *http.Request, preferrer preferring.Preferrer, session *domain.Session) int64 {
	prefs, err := preferrer.GetPreferences(r.Context(), session.Email)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("searchterms: preferências indisponíveis, usando tabela padrão")
		return 0
	}
	return prefs.SelectedClientID
}
