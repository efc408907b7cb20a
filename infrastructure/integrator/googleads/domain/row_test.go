package googleadsdomain

import (
	"testing"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestRowDecoding(t *testing.T) {
	payload := `{
		"campaign": {"id": "987", "name": "Marque", "status": "PAUSED"},
		"campaignBudget": {"amountMicros": "25000000"},
		"metrics": {"clicks": "12", "impressions": 3400, "costMicros": "5500000", "conversions": 1.5}
	}`

	var row Row
	require.NoError(t, json.Unmarshal([]byte(payload), &row))

	require.NotNil(t, row.Campaign)
	assert.Equal(t, int64(987), row.Campaign.ID.Int64())
	assert.Equal(t, domain.CampaignStatusPaused, row.Campaign.Status)
	assert.Equal(t, int64(25000000), row.CampaignBudget.AmountMicros.Int64())
	assert.Equal(t, int64(12), row.Metrics.Clicks.Int64())
	assert.Equal(t, int64(3400), row.Metrics.Impressions.Int64())
	assert.Equal(t, int64(5500000), row.Metrics.CostMicros.Int64())
	assert.Equal(t, 1.5, row.Metrics.Conversions)
	assert.Nil(t, row.Customer)
}

func TestInt64ValueInvalid(t *testing.T) {
	var v Int64Value
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}
