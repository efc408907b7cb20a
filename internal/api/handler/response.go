package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/reporting"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	InvalidBodyMessage    = "Corps de requête invalide"
	InvalidTableMessage   = "Table invalide"
	InternalErrorMessage  = "Erreur interne du serveur"
	InvalidDateMessage    = "Période invalide"
	InvalidIDMessage      = "Identifiant invalide"
	EncodeResponseMessage = "Erreur lors de l'envoi de la réponse"
)

// nomes exibidos nas mensagens de erro de serviços externos
var upstreamLabels = map[string]string{
	"nocodb": "NocoDB",
	"n8n":    "n8n",
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: falha ao codificar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("corpo vazio")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError traduz os erros dos casos de uso para o corpo padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var tableErr *tabling.TableError
	if errors.As(err, &tableErr) && errors.Is(tableErr.Err, tabling.ErrUnknownTable) {
		logger.Warn("handler: tabela desconhecida")
		apiErrors.WriteErrorFields(w, apiErrors.ErrInvalidTable, InvalidTableMessage, map[string]any{
			"validTables": tableErr.ValidTables,
		})
		return
	}

	if upstreamErr, ok := domain.AsUpstreamError(err); ok {
		logger.WithField("status", upstreamErr.StatusCode).Warn("handler: serviço externo respondeu com erro")
		apiErrors.WriteStatus(w, upstreamErr.StatusCode, upstreamMessage(upstreamErr), upstreamErr.Body)
		return
	}

	code, cause, details, ok := codedError(err)
	if !ok {
		logger.Error("handler: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, InternalErrorMessage, nil)
		return
	}

	var detailsBody any
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		// detalhes internos ficam só no log
		logger.Error("handler: falha ao processar requisição")
	} else {
		logger.Info("handler: requisição recusada")
		if details != "" {
			detailsBody = details
		}
	}
	apiErrors.WriteError(w, code, capitalize(cause.Error()), detailsBody)
}

func codedError(err error) (code string, cause error, details string, ok bool) {
	var (
		authErr       *authenticating.AuthError
		reportErr     *reporting.ReportError
		tableErr      *tabling.TableError
		triggerErr    *triggering.TriggerError
		triageErr     *triaging.TriageError
		preferenceErr *preferring.PreferenceError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code, authErr.Err, authErr.Details, true
	case errors.As(err, &reportErr):
		return reportErr.Code, reportErr.Err, reportErr.Details, true
	case errors.As(err, &tableErr):
		return tableErr.Code, tableErr.Err, tableErr.Details, true
	case errors.As(err, &triggerErr):
		return triggerErr.Code, triggerErr.Err, triggerErr.Details, true
	case errors.As(err, &triageErr):
		return triageErr.Code, triageErr.Err, triageErr.Details, true
	case errors.As(err, &preferenceErr):
		return preferenceErr.Code, preferenceErr.Err, preferenceErr.Details, true
	}

	return "", nil, "", false
}

func upstreamMessage(err *domain.UpstreamError) string {
	label, ok := upstreamLabels[err.Service]
	if !ok {
		label = err.Service
	}
	return fmt.Sprintf("Erreur %s: %d", label, err.StatusCode)
}

func capitalize(message string) string {
	r, size := utf8.DecodeRuneInString(message)
	if r == utf8.RuneError {
		return message
	}
	return string(unicode.ToUpper(r)) + message[size:]
}

// parseDateRange lê startDate/endDate; os dois ausentes significa o período padrão
func parseDateRange(r *http.Request) (*domain.DateRange, error) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" && end == "" {
		return nil, nil
	}

	dateRange, err := domain.NewCustomDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &dateRange, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
