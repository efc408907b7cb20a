package googleadsclient

import (
	"context"
	"net/http"
	"time"

	googleadsdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
)

type Client interface {
	Search(ctx context.Context, refreshToken, customerID, query string) ([]googleadsdomain.Row, error)
	ForgetToken(refreshToken string)
}

type GoogleAdsClient struct {
	cfg          *config.Config
	httpClient   *http.Client
	tokenManager *TokenManager
	metrics      *metrics.Metrics
}

func NewClient(cfg *config.Config, tokenManager *TokenManager, m *metrics.Metrics) Client {
	timeout := cfg.GoogleAds.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GoogleAdsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokenManager: tokenManager,
		metrics:      m,
	}
}

func (c *GoogleAdsClient) ForgetToken(refreshToken string) {
	c.tokenManager.Forget(refreshToken)
}
