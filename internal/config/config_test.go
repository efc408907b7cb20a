package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValueList(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected map[string]string
		wantErr  bool
	}{
		{
			name:    "Lista de tabelas padrão",
			entries: []string{"campaigns=m85p8wmzwk6mrls", " searchTermsAnalysis = mjfs0gle9j3wyfi "},
			expected: map[string]string{
				"campaigns":           "m85p8wmzwk6mrls",
				"searchTermsAnalysis": "mjfs0gle9j3wyfi",
			},
		},
		{
			name:     "Entradas vazias são ignoradas",
			entries:  []string{"", "  "},
			expected: map[string]string{},
		},
		{
			name:    "Cron com espaços no valor",
			entries: []string{"weekly-report=0 8 * * 1"},
			expected: map[string]string{
				"weekly-report": "0 8 * * 1",
			},
		},
		{
			name:    "Entrada sem separador",
			entries: []string{"campaigns"},
			wantErr: true,
		},
		{
			name:    "Entrada sem valor",
			entries: []string{"campaigns="},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseKeyValueList(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfigResolve(t *testing.T) {
	cfg := &Config{
		Database: Database{Driver: "postgres", User: "u", Password: "p", URL: "localhost:5432/db"},
		GoogleAds: GoogleAds{
			BaseURL:         "https://googleads.googleapis.com/",
			Version:         "v17",
			LoginCustomerID: "123-456-7890",
		},
		NocoDB:           NocoDB{URL: "https://database.accolades.marketing/", Tables: []string{"campaigns=abc"}},
		N8N:              N8N{URL: "https://automation.accolades.marketing/"},
		WorkflowSchedule: WorkflowSchedule{Schedules: "weekly-report=0 8 * * 1;campaign-performance=0 6 * * *"},
	}

	require.NoError(t, cfg.resolve())

	assert.Equal(t, "https://googleads.googleapis.com/v17", cfg.GoogleAds.URL)
	assert.Equal(t, "1234567890", cfg.GoogleAds.LoginCustomerID)
	assert.Equal(t, 1, cfg.GoogleAds.MaxConcurrentRequests)
	assert.Equal(t, "https://database.accolades.marketing", cfg.NocoDB.URL)
	assert.Equal(t, "https://automation.accolades.marketing", cfg.N8N.URL)
	assert.Equal(t, map[string]string{"campaigns": "abc"}, cfg.NocoDB.TableIDs)
	assert.Equal(t, "0 8 * * 1", cfg.WorkflowSchedule.ByWorkflow["weekly-report"])
	assert.Equal(t, "0 6 * * *", cfg.WorkflowSchedule.ByWorkflow["campaign-performance"])
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Database.DSN)
}
