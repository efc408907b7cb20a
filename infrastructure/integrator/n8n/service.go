package n8n

import (
	"context"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type N8NIntegrator interface {
	Trigger(ctx context.Context, webhookPath string, payload map[string]any, source string) (any, error)
}

type Integrator struct {
	cfg    *config.Config
	Client n8nclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client n8nclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// Trigger dispara o webhook acrescentando triggeredAt e source ao payload
func (s *Integrator) Trigger(ctx context.Context, webhookPath string, payload map[string]any, source string) (any, error) {
	body := make(map[string]any, len(payload)+2)
	for key, value := range payload {
		body[key] = value
	}
	body["triggeredAt"] = s.now().UTC().Format(time.RFC3339)
	body["source"] = source

	logrus.WithFields(logrus.Fields{
		"webhook_path": webhookPath,
		"source":       source,
	}).Info("n8n: disparando workflow")

	result, err := s.Client.TriggerWebhook(ctx, webhookPath, body)
	if err != nil {
		return nil, errors.Wrapf(err, "n8n: erro ao disparar o webhook %s", webhookPath)
	}

	return result, nil
}
