package nocodbclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *NocoDBClient) ListRecords(ctx context.Context, tableID string, params nocodbdomain.ListParams) (*nocodbdomain.ListResponse, error) {
	started := time.Now()

	params = params.WithDefaults()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	if params.Where != "" {
		query.Set("where", params.Where)
	}

	var response nocodbdomain.ListResponse
	err := c.do(ctx, http.MethodGet, tableID, query, nil, &response)
	c.metrics.ObserveUpstream(upstreamName, "list", started, err)
	if err != nil {
		return nil, err
	}

	if response.List == nil {
		response.List = []nocodbdomain.Record{}
	}

	return &response, nil
}

func (c *NocoDBClient) CreateRecord(ctx context.Context, tableID string, data nocodbdomain.Record) (any, error) {
	started := time.Now()

	var result any
	err := c.do(ctx, http.MethodPost, tableID, nil, data, &result)
	c.metrics.ObserveUpstream(upstreamName, "create", started, err)

	return result, err
}

// UpdateRecords envia um PATCH em lote; cada registro precisa do campo Id
func (c *NocoDBClient) UpdateRecords(ctx context.Context, tableID string, records []nocodbdomain.Record) (any, error) {
	started := time.Now()

	var result any
	err := c.do(ctx, http.MethodPatch, tableID, nil, records, &result)
	c.metrics.ObserveUpstream(upstreamName, "update", started, err)

	return result, err
}

func (c *NocoDBClient) do(ctx context.Context, method, tableID string, query url.Values, body any, out any) error {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.NocoDB.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/v2/tables", tableID, "records")
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.NocoDB.APIToken != "" {
		req.Header.Set("xc-token", c.config.NocoDB.APIToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	data, err := utils.ReadBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.UpstreamError{
			Service:    upstreamName,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
