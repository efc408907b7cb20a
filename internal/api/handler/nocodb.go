package handler

import (
	"net/http"

	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
)

// ListRecords repassa a listagem ao NocoDB: ?table|tableId, limit, offset, sort, where
func ListRecords(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit, err := queryInt(r, "limit", 0)
		if err != nil || limit < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Paramètre limit invalide", nil)
			return
		}

		offset, err := queryInt(r, "offset", 0)
		if err != nil || offset < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Paramètre offset invalide", nil)
			return
		}

		result, err := service.List(r.Context(), tabling.ListRequest{
			Table:   query.Get("table"),
			TableID: query.Get("tableId"),
			Limit:   limit,
			Offset:  offset,
			Sort:    query.Get("sort"),
			Where:   query.Get("where"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"table":   result.Table,
			"records": len(result.Data),
		}).Debug("nocodb: registros listados")

		writeJSON(w, r, http.StatusOK, result)
	})
}

func CreateRecord(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tabling.CreateRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		result, err := service.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("table", req.Table).Info("nocodb: registro criado")
		writeJSON(w, r, http.StatusOK, result)
	})
}

func UpdateRecord(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tabling.UpdateRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, InvalidBodyMessage, nil)
			return
		}

		result, err := service.Update(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"table": req.Table,
			"id":    req.ID,
		}).Info("nocodb: registro atualizado")
		writeJSON(w, r, http.StatusOK, result)
	})
}
