package triaging

import "github.com/accolades/ads-dashboard-api/internal/domain"

type ViewRequest struct {
	View             *domain.TriageView
	Refresh          bool
	SelectedClientID int64
}

// ActionRequest aplica Action aos IDs informados, ou à seleção atual quando Selected é true
type ActionRequest struct {
	IDs      []int64           `json:"ids"`
	Action   domain.TermAction `json:"action"`
	Selected bool              `json:"selected"`
}

// SelectionRequest alterna um termo (ID) ou todos os visíveis (All)
type SelectionRequest struct {
	ID  *int64 `json:"id"`
	All bool   `json:"all"`
}

type SubmitRequest struct {
	ExclusionLevel   domain.ExclusionLevel `json:"exclusionLevel"`
	TriggeredBy      string                `json:"-"`
	SelectedClientID int64                 `json:"-"`
}
