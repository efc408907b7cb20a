package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	googleadsdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/accolades/ads-dashboard-api/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxSearchPages limita a paginação de uma única consulta GAQL
var maxSearchPages = 20

// Search executa uma consulta GAQL e percorre todas as páginas do resultado
func (c *GoogleAdsClient) Search(ctx context.Context, refreshToken, customerID, query string) ([]googleadsdomain.Row, error) {
	started := time.Now()
	rows, err := c.search(ctx, refreshToken, customerID, query)
	c.metrics.ObserveUpstream("google_ads", "search", started, err)
	return rows, err
}

func (c *GoogleAdsClient) search(ctx context.Context, refreshToken, customerID, query string) ([]googleadsdomain.Row, error) {
	accessToken, err := c.tokenManager.AccessToken(refreshToken)
	if err != nil {
		return nil, err
	}

	customerID = config.NormalizeCustomerID(customerID)
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	rows := make([]googleadsdomain.Row, 0)
	pageToken := ""
	for page := 0; page < maxSearchPages; page++ {
		response, err := c.searchPage(ctx, endpoint, accessToken, googleadsdomain.SearchRequest{
			Query:     query,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			return rows, nil
		}
		pageToken = response.NextPageToken
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"pages":       maxSearchPages,
		"rows":        len(rows),
	}).Warn("googleads: consulta interrompida no limite de páginas")

	return nil, fmt.Errorf("cliente %s: %w", customerID, googleadsdomain.ErrSearchTruncated)
}

func (c *GoogleAdsClient) searchPage(ctx context.Context, endpoint, accessToken string, body googleadsdomain.SearchRequest) (*googleadsdomain.SearchResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var response googleadsdomain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &googleadsdomain.APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	// Erros de busca vêm como objeto ou como lista de objetos
	var single googleadsdomain.ErrorResponse
	if err := json.Unmarshal(raw, &single); err == nil && single.Error.Message != "" {
		apiErr.Status = single.Error.Status
		apiErr.Message = single.Error.Message
		return apiErr
	}

	var list []googleadsdomain.ErrorResponse
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		apiErr.Status = list[0].Error.Status
		apiErr.Message = list[0].Error.Message
		return apiErr
	}

	apiErr.Message = string(raw)
	return apiErr
}
