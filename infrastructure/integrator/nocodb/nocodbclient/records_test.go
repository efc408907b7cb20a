package nocodbclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.NocoDB.URL = serverURL
	cfg.NocoDB.APIToken = "secret-token"
	return NewClient(cfg, nil)
}

func TestNocoDBClient_ListRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/tables/mjfs0gle9j3wyfi/records", r.URL.Path)
		assert.Equal(t, "secret-token", r.Header.Get("xc-token"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "-CreatedAt", r.URL.Query().Get("sort"))
		assert.False(t, r.URL.Query().Has("where"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"list":[{"Id":1,"search_term":"gratuit"}],"pageInfo":{"totalRows":1,"page":1,"pageSize":25,"isFirstPage":true,"isLastPage":true}}`)
	}))
	defer server.Close()

	response, err := newTestClient(server.URL).ListRecords(context.Background(), "mjfs0gle9j3wyfi", nocodbdomain.ListParams{Limit: 25, Sort: "-CreatedAt"})
	require.NoError(t, err)
	require.Len(t, response.List, 1)
	assert.Equal(t, "gratuit", response.List[0]["search_term"])
	require.NotNil(t, response.PageInfo)
	assert.Equal(t, 1, response.PageInfo.TotalRows)
	assert.True(t, response.PageInfo.IsLastPage)
}

func TestNocoDBClient_ListRecords_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	response, err := newTestClient(server.URL).ListRecords(context.Background(), "t1", nocodbdomain.ListParams{})
	require.NoError(t, err)
	assert.NotNil(t, response.List)
	assert.Empty(t, response.List)
	assert.Nil(t, response.PageInfo)
}

func TestNocoDBClient_UpdateRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"Id":42,"action_status":"exclude","exclusion_level":"campaign"}]`, string(body))

		_, _ = io.WriteString(w, `[{"Id":42}]`)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).UpdateRecords(context.Background(), "t1", []nocodbdomain.Record{
		{"Id": 42, "action_status": "exclude", "exclusion_level": "campaign"},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"Id": float64(42)}}, result)
}

func TestNocoDBClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"msg":"Invalid field"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateRecord(context.Background(), "t1", nocodbdomain.Record{"x": 1})
	require.Error(t, err)

	upstreamErr, ok := domain.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, "nocodb", upstreamErr.Service)
	assert.Equal(t, http.StatusUnprocessableEntity, upstreamErr.StatusCode)
	assert.Equal(t, `{"msg":"Invalid field"}`, upstreamErr.Body)
}
