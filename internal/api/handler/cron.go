package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSessionCleanup = "session-cleanup"
	CronJobTypeWorkflows      = "workflows"
	CronJobTypeAll            = "all"
)

// CronJob é o controle manual exposto pelos agendadores
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	SessionCleanup   CronJob
	WorkflowSchedule CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Type de tâche non spécifié", nil)
			return
		}

		switch cronType {
		case CronJobTypeSessionCleanup:
			if services.SessionCleanup == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Nettoyage des sessions indisponible", nil)
				return
			}
			services.SessionCleanup.TriggerManualSync()

		case CronJobTypeWorkflows:
			if services.WorkflowSchedule == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Planification des workflows indisponible", nil)
				return
			}
			services.WorkflowSchedule.TriggerManualSync()

		case CronJobTypeAll:
			if services.SessionCleanup != nil {
				services.SessionCleanup.TriggerManualSync()
			}
			if services.WorkflowSchedule != nil {
				services.WorkflowSchedule.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Type de tâche invalide. Valeurs acceptées: session-cleanup, workflows, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Tâche démarrée avec succès",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SessionCleanup != nil {
			status[CronJobTypeSessionCleanup] = services.SessionCleanup.GetStatus()
		}
		if services.WorkflowSchedule != nil {
			status[CronJobTypeWorkflows] = services.WorkflowSchedule.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
