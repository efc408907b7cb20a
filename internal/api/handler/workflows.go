package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
)

const anonymousTrigger = "anonymous"

// TriggerWorkflow repassa o disparo ao webhook do n8n
func TriggerWorkflow(service triggering.Triggerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.TriggerRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		triggeredBy := anonymousTrigger
		if session, ok := middleware.SessionFromContext(r.Context()); ok {
			triggeredBy = session.Email
		}

		result, err := service.Trigger(r.Context(), req, domain.TriggerSourceDashboard, triggeredBy)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"workflow_id":  req.WorkflowID,
			"webhook_path": req.WebhookPath,
			"run_id":       result.RunID,
		}).Info("workflows: workflow disparado")

		writeJSON(w, r, http.StatusOK, result)
	})
}

// ListWorkflows filtra o catálogo por ?category e ?q
func ListWorkflows(service triggering.Triggerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		workflows := service.ListWorkflows(domain.WorkflowCategory(query.Get("category")), query.Get("q"))

		writeJSON(w, r, http.StatusOK, map[string]any{
			"workflows": workflows,
			"total":     len(workflows),
		})
	})
}

func ListWorkflowRuns(service triggering.Triggerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Paramètre limit invalide", nil)
			return
		}

		runs, err := service.ListRuns(r.Context(), r.URL.Query().Get("workflowId"), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if runs == nil {
			runs = []*domain.WorkflowRun{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"runs": runs})
	})
}
