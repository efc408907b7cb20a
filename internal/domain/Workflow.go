package domain

import "strings"

type WorkflowCategory string

const (
	WorkflowCategoryAnalysis     WorkflowCategory = "analysis"
	WorkflowCategoryOptimization WorkflowCategory = "optimization"
	WorkflowCategoryReporting    WorkflowCategory = "reporting"
	WorkflowCategorySync         WorkflowCategory = "sync"
)

const ApplyNegativeKeywordsWorkflowID = "apply-negative-keywords"

type Workflow struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Color       string           `json:"color"`
	WebhookPath string           `json:"webhookPath"`
	Category    WorkflowCategory `json:"category"`
}

var workflows = []Workflow{
	{
		ID:          "search-terms-analysis",
		Name:        "Analyse des Search Terms (Unscented)",
		Description: "Analyse les termes de recherche avec l'IA pour identifier les mots-clés non pertinents",
		Icon:        "🔍",
		Color:       "blue",
		WebhookPath: "/webhook/2b31c2a4-22a0-4fc8-a40f-a4720c77aa50",
		Category:    WorkflowCategoryAnalysis,
	},
	{
		ID:          "campaign-performance",
		Name:        "Analyse Performance Campagnes",
		Description: "Évalue les performances de toutes les campagnes et génère des recommandations",
		Icon:        "📊",
		Color:       "emerald",
		WebhookPath: "/webhook/campaign-performance",
		Category:    WorkflowCategoryAnalysis,
	},
	{
		ID:          "weekly-report",
		Name:        "Rapport Hebdomadaire",
		Description: "Génère un rapport complet des performances de la semaine",
		Icon:        "📈",
		Color:       "violet",
		WebhookPath: "/webhook/weekly-report",
		Category:    WorkflowCategoryReporting,
	},
	{
		ID:          "negative-keywords-sync",
		Name:        "Sync Mots-clés Négatifs",
		Description: "Synchronise les mots-clés à exclure identifiés par l'IA vers Google Ads",
		Icon:        "🚫",
		Color:       "rose",
		WebhookPath: "/webhook/sync-negative-keywords",
		Category:    WorkflowCategorySync,
	},
	{
		ID:          ApplyNegativeKeywordsWorkflowID,
		Name:        "Appliquer Exclusions (Dashboard)",
		Description: "Applique les exclusions de mots-clés marqués dans le dashboard vers Google Ads",
		Icon:        "⚡",
		Color:       "amber",
		WebhookPath: "/webhook/apply-negative-keywords",
		Category:    WorkflowCategorySync,
	},
	{
		ID:          "budget-optimizer",
		Name:        "Optimisation Budget",
		Description: "Suggère des réallocations de budget basées sur les performances",
		Icon:        "💰",
		Color:       "amber",
		WebhookPath: "/webhook/optimize-budget",
		Category:    WorkflowCategoryOptimization,
	},
	{
		ID:          "competitor-monitor",
		Name:        "Surveillance Concurrents",
		Description: "Analyse les changements sur les sites concurrents",
		Icon:        "👀",
		Color:       "cyan",
		WebhookPath: "/webhook/competitor-monitor",
		Category:    WorkflowCategoryAnalysis,
	},
}

// Workflows devolve uma cópia do registro estático
func Workflows() []Workflow {
	list := make([]Workflow, len(workflows))
	copy(list, workflows)
	return list
}

func FindWorkflow(id string) (Workflow, bool) {
	for _, wf := range workflows {
		if wf.ID == id {
			return wf, true
		}
	}
	return Workflow{}, false
}

// FindWorkflowByPath identifica o workflow de um webhook informado diretamente
func FindWorkflowByPath(path string) (Workflow, bool) {
	for _, wf := range workflows {
		if wf.WebhookPath == path {
			return wf, true
		}
	}
	return Workflow{}, false
}

// FilterWorkflows filtra por categoria e por texto no nome ou descrição
func FilterWorkflows(category WorkflowCategory, query string) []Workflow {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]Workflow, 0, len(workflows))
	for _, wf := range workflows {
		if category != "" && wf.Category != category {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(wf.Name), query) &&
			!strings.Contains(strings.ToLower(wf.Description), query) {
			continue
		}

		filtered = append(filtered, wf)
	}
	return filtered
}
