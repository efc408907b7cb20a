package n8nclient

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const SignatureHeader = "X-Webhook-Signature"

// TriggerWebhook envia o corpo ao webhook; respostas não JSON viram {"message": texto}
func (c *N8NClient) TriggerWebhook(ctx context.Context, webhookPath string, body map[string]any) (any, error) {
	started := time.Now()
	result, err := c.triggerWebhook(ctx, webhookPath, body)
	c.metrics.ObserveUpstream(upstreamName, "webhook", started, err)
	return result, err
}

func (c *N8NClient) triggerWebhook(ctx context.Context, webhookPath string, body map[string]any) (any, error) {
	if !strings.HasPrefix(webhookPath, "/") {
		webhookPath = "/" + webhookPath
	}
	endpoint := c.config.N8N.URL + webhookPath

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.config.N8N.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(c.config.N8N.WebhookSecret, payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	data, err := utils.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{
			Service:    upstreamName,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	return utils.DecodeBody(resp.Header, data)
}

// Sign calcula o HMAC-SHA256 do corpo em hexadecimal
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
