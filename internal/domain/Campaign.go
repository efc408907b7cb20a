package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// CampaignStatus segue o enum CampaignStatus do Google Ads
type CampaignStatus string

const (
	CampaignStatusUnspecified CampaignStatus = "UNSPECIFIED"
	CampaignStatusUnknown     CampaignStatus = "UNKNOWN"
	CampaignStatusEnabled     CampaignStatus = "ENABLED"
	CampaignStatusPaused      CampaignStatus = "PAUSED"
	CampaignStatusRemoved     CampaignStatus = "REMOVED"
)

var campaignStatusByCode = map[int]CampaignStatus{
	0: CampaignStatusUnspecified,
	1: CampaignStatusUnknown,
	2: CampaignStatusEnabled,
	3: CampaignStatusPaused,
	4: CampaignStatusRemoved,
}

// CampaignStatusFromCode converte o valor numérico do enum
func CampaignStatusFromCode(code int) CampaignStatus {
	if status, ok := campaignStatusByCode[code]; ok {
		return status
	}
	return CampaignStatusUnknown
}

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusUnspecified, CampaignStatusUnknown, CampaignStatusEnabled, CampaignStatusPaused, CampaignStatusRemoved:
		return true
	}
	return false
}

// UnmarshalJSON aceita tanto o nome do enum quanto o código numérico
func (s *CampaignStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = CampaignStatusUnspecified
		return nil
	}

	if data[0] == '"' {
		raw, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("status de campanha inválido: %s", data)
		}

		status := CampaignStatus(raw)
		if !status.IsValid() {
			status = CampaignStatusUnknown
		}
		*s = status
		return nil
	}

	code, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("status de campanha inválido: %s", data)
	}
	*s = CampaignStatusFromCode(code)
	return nil
}

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Cost        float64        `json:"cost"`
	Clicks      int64          `json:"clicks"`
	Impressions int64          `json:"impressions"`
	Conversions float64        `json:"conversions"`
	CTR         float64        `json:"ctr"`
	AverageCPC  float64        `json:"averageCpc"`
}
