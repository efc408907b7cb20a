package n8nclient

import (
	"context"
	"net/http"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
)

const upstreamName = "n8n"

type Client interface {
	TriggerWebhook(ctx context.Context, webhookPath string, body map[string]any) (any, error)
}

type N8NClient struct {
	httpClient *http.Client
	config     *config.Config
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	timeout := cfg.N8N.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &N8NClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:  cfg,
		metrics: m,
	}
}
