package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWorkflow(t *testing.T) {
	wf, ok := FindWorkflow(ApplyNegativeKeywordsWorkflowID)
	assert.True(t, ok)
	assert.Equal(t, "/webhook/apply-negative-keywords", wf.WebhookPath)

	_, ok = FindWorkflow("inexistente")
	assert.False(t, ok)

	wf, ok = FindWorkflowByPath("/webhook/weekly-report")
	assert.True(t, ok)
	assert.Equal(t, "weekly-report", wf.ID)
}

func TestFilterWorkflows(t *testing.T) {
	tests := []struct {
		name     string
		category WorkflowCategory
		query    string
		expected []string
	}{
		{
			name:     "Sem filtro devolve todos",
			expected: []string{"search-terms-analysis", "campaign-performance", "weekly-report", "negative-keywords-sync", "apply-negative-keywords", "budget-optimizer", "competitor-monitor"},
		},
		{
			name:     "Por categoria",
			category: WorkflowCategorySync,
			expected: []string{"negative-keywords-sync", "apply-negative-keywords"},
		},
		{
			name:     "Busca no nome ignora caixa",
			query:    "  RAPPORT ",
			expected: []string{"weekly-report"},
		},
		{
			name:     "Busca na descrição",
			category: WorkflowCategoryAnalysis,
			query:    "concurrents",
			expected: []string{"competitor-monitor"},
		},
		{
			name:     "Nada encontrado",
			query:    "facebook",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, 0)
			for _, wf := range FilterWorkflows(tt.category, tt.query) {
				ids = append(ids, wf.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestWorkflows_ReturnsCopy(t *testing.T) {
	list := Workflows()
	list[0].Name = "alterado"

	assert.NotEqual(t, "alterado", Workflows()[0].Name)
}
