package nocodbclient

import (
	"context"
	"net/http"
	"time"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
)

const upstreamName = "nocodb"

type Client interface {
	ListRecords(ctx context.Context, tableID string, params nocodbdomain.ListParams) (*nocodbdomain.ListResponse, error)
	CreateRecord(ctx context.Context, tableID string, data nocodbdomain.Record) (any, error)
	UpdateRecords(ctx context.Context, tableID string, records []nocodbdomain.Record) (any, error)
}

type NocoDBClient struct {
	httpClient *http.Client
	config     *config.Config
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	timeout := cfg.NocoDB.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &NocoDBClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:  cfg,
		metrics: m,
	}
}
