package n8n

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n/mocks"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIntegrator_Trigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	integrator := New(&config.Config{}, client)
	integrator.now = func() time.Time {
		return time.Date(2025, 3, 10, 14, 30, 0, 0, time.FixedZone("EST", -5*3600))
	}

	payload := map[string]any{"action": "apply_exclusions", "source": "ignored"}

	client.EXPECT().
		TriggerWebhook(gomock.Any(), "/webhook/apply-negative-keywords", map[string]any{
			"action":      "apply_exclusions",
			"triggeredAt": "2025-03-10T19:30:00Z",
			"source":      "dashboard",
		}).
		Return(map[string]any{"ok": true}, nil)

	result, err := integrator.Trigger(context.Background(), "/webhook/apply-negative-keywords", payload, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, result)

	assert.Equal(t, "ignored", payload["source"], "o payload original não é alterado")
}

func TestIntegrator_Trigger_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	boom := errors.New("boom")
	client.EXPECT().TriggerWebhook(gomock.Any(), "/webhook/x", gomock.Any()).Return(nil, boom)

	_, err := New(&config.Config{}, client).Trigger(context.Background(), "/webhook/x", nil, "scheduler")
	assert.ErrorIs(t, err, boom)
}
