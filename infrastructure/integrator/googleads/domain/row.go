package googleadsdomain

import (
	"bytes"
	"strconv"

	"github.com/accolades/ads-dashboard-api/internal/domain"
)

// Int64Value decodifica int64 que a API REST envia como string ("1234")
type Int64Value int64

func (v *Int64Value) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}

	parsed, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return err
		}
		parsed = int64(f)
	}

	*v = Int64Value(parsed)
	return nil
}

func (v Int64Value) Int64() int64 {
	return int64(v)
}

// SearchRequest é o corpo de googleAds:search
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken"`
	FieldMask     string `json:"fieldMask"`
}

// Row é uma linha GAQL; somente os recursos selecionados vêm preenchidos
type Row struct {
	Customer       *Customer       `json:"customer,omitempty"`
	CustomerClient *CustomerClient `json:"customerClient,omitempty"`
	Campaign       *Campaign       `json:"campaign,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
}

type Customer struct {
	ID              Int64Value `json:"id"`
	DescriptiveName string     `json:"descriptiveName"`
	CurrencyCode    string     `json:"currencyCode"`
}

type CustomerClient struct {
	ClientCustomer  string `json:"clientCustomer"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
	Status          string `json:"status"`
}

type Campaign struct {
	ID     Int64Value            `json:"id"`
	Name   string                `json:"name"`
	Status domain.CampaignStatus `json:"status"`
}

type CampaignBudget struct {
	AmountMicros Int64Value `json:"amountMicros"`
}

type Metrics struct {
	Clicks      Int64Value `json:"clicks"`
	Impressions Int64Value `json:"impressions"`
	CostMicros  Int64Value `json:"costMicros"`
	Conversions float64    `json:"conversions"`
	CTR         float64    `json:"ctr"`
	AverageCPC  float64    `json:"averageCpc"`
}
