package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAlerts(t *testing.T) {
	tests := []struct {
		name     string
		perf     CampaignPerformance
		expected []string
	}{
		{
			name:     "Sem alertas",
			perf:     CampaignPerformance{CampaignName: "Marque", Impressions: 5000, Clicks: 200, CostMicros: 80_000_000, Conversions: 4},
			expected: []string{},
		},
		{
			name:     "CTR baixo",
			perf:     CampaignPerformance{CampaignName: "Générique", Impressions: 5000, Clicks: 20, CostMicros: 10_000_000, Conversions: 1},
			expected: []string{AlertTypeLowCTR},
		},
		{
			name:     "Poucas impressões não geram alerta de CTR",
			perf:     CampaignPerformance{CampaignName: "Nouveau", Impressions: 1000, Clicks: 0},
			expected: []string{},
		},
		{
			name:     "Gasto sem conversão",
			perf:     CampaignPerformance{CampaignName: "Lunettes", Impressions: 800, Clicks: 30, CostMicros: 60_000_000},
			expected: []string{AlertTypeNoConversions},
		},
		{
			name:     "Exatamente no limite de gasto",
			perf:     CampaignPerformance{CampaignName: "Limite", Impressions: 800, Clicks: 30, CostMicros: NoConversionsCostMicrosLimit},
			expected: []string{},
		},
		{
			name:     "Os dois alertas",
			perf:     CampaignPerformance{CampaignName: "Display", Impressions: 20000, Clicks: 50, CostMicros: 75_000_000},
			expected: []string{AlertTypeLowCTR, AlertTypeNoConversions},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := DeriveAlerts(tt.perf)

			types := make([]string, 0, len(alerts))
			for _, alert := range alerts {
				types = append(types, alert.Type)
				assert.Equal(t, tt.perf.CampaignName, alert.CampaignName)
			}
			assert.Equal(t, tt.expected, types)
		})
	}
}

func TestDeriveAlerts_Messages(t *testing.T) {
	alerts := DeriveAlerts(CampaignPerformance{
		CampaignID:   "99",
		CampaignName: "Display",
		Impressions:  20000,
		Clicks:       50,
		CostMicros:   75_000_000,
	})
	require.Len(t, alerts, 2)

	assert.Equal(t, AlertSeverityMedium, alerts[0].Severity)
	assert.Equal(t, "Display: CTR de 0.25%", alerts[0].Message)
	assert.Equal(t, AlertSeverityHigh, alerts[1].Severity)
	assert.Equal(t, "Display: 75.00$ dépensés sans conversion", alerts[1].Message)
	assert.Equal(t, "99", alerts[1].CampaignID)
}
