package domain

import "fmt"

type AlertSeverity string

const (
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

const (
	AlertTypeLowCTR        = "CTR Faible"
	AlertTypeNoConversions = "Sans conversions"
)

// Limiares usados na derivação de alertas
const (
	LowCTRMinImpressions         = 1000
	LowCTRThreshold              = 0.01
	NoConversionsCostMicrosLimit = 50_000_000
)

type Alert struct {
	Type         string        `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	CampaignID   string        `json:"campaignId,omitempty"`
	CampaignName string        `json:"campaignName"`
	Message      string        `json:"message"`
}

// CampaignPerformance são os totais de uma campanha na janela de alertas
type CampaignPerformance struct {
	CampaignID   string
	CampaignName string
	Impressions  int64
	Clicks       int64
	CostMicros   int64
	Conversions  float64
}

// DeriveAlerts aplica as regras de CTR baixo e gasto sem conversão
func DeriveAlerts(perf CampaignPerformance) []Alert {
	alerts := make([]Alert, 0, 2)

	if perf.Impressions > LowCTRMinImpressions {
		ctr := float64(perf.Clicks) / float64(perf.Impressions)
		if ctr < LowCTRThreshold {
			alerts = append(alerts, Alert{
				Type:         AlertTypeLowCTR,
				Severity:     AlertSeverityMedium,
				CampaignID:   perf.CampaignID,
				CampaignName: perf.CampaignName,
				Message:      fmt.Sprintf("%s: CTR de %.2f%%", perf.CampaignName, ctr*100),
			})
		}
	}

	if perf.CostMicros > NoConversionsCostMicrosLimit && perf.Conversions == 0 {
		alerts = append(alerts, Alert{
			Type:         AlertTypeNoConversions,
			Severity:     AlertSeverityHigh,
			CampaignID:   perf.CampaignID,
			CampaignName: perf.CampaignName,
			Message:      fmt.Sprintf("%s: %.2f$ dépensés sans conversion", perf.CampaignName, MicrosToCurrency(perf.CostMicros)),
		})
	}

	return alerts
}
