package domain

// ActionStatus é o estado persistido de um termo no NocoDB
type ActionStatus string

const (
	ActionStatusPending  ActionStatus = "pending"
	ActionStatusKeep     ActionStatus = "keep"
	ActionStatusExclude  ActionStatus = "exclude"
	ActionStatusExcluded ActionStatus = "excluded"
)

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusKeep, ActionStatusExclude, ActionStatusExcluded:
		return true
	}
	return false
}

// ExclusionLevel é o escopo em que a palavra-chave negativa será aplicada
type ExclusionLevel string

const (
	ExclusionLevelAdGroup  ExclusionLevel = "ad_group"
	ExclusionLevelCampaign ExclusionLevel = "campaign"
	ExclusionLevelList     ExclusionLevel = "list"

	DefaultExclusionLevel = ExclusionLevelCampaign
)

func (l ExclusionLevel) IsValid() bool {
	switch l {
	case ExclusionLevelAdGroup, ExclusionLevelCampaign, ExclusionLevelList:
		return true
	}
	return false
}

func (l ExclusionLevel) Label() string {
	switch l {
	case ExclusionLevelAdGroup:
		return "Ad Group"
	case ExclusionLevelCampaign:
		return "Campaign"
	case ExclusionLevelList:
		return "Liste partagée"
	}
	return string(l)
}

// TermAction é a decisão local sobre um termo; vazio significa sem decisão
type TermAction string

const (
	TermActionNone    TermAction = ""
	TermActionKeep    TermAction = "keep"
	TermActionExclude TermAction = "exclude"
)

func (a TermAction) IsValid() bool {
	return a == TermActionNone || a == TermActionKeep || a == TermActionExclude
}

const DefaultMatchType = "EXACT"

type SearchTermRecord struct {
	ID              int64          `json:"Id"`
	SearchTerm      string         `json:"search_term"`
	Impressions     int64          `json:"impressions"`
	Clicks          int64          `json:"clicks"`
	Cost            float64        `json:"cost"`
	Conversions     float64        `json:"conversions"`
	ConversionValue float64        `json:"conversion_value"`
	CPA             float64        `json:"cpa"`
	ROAS            float64        `json:"roas"`
	Reason          string         `json:"reason"`
	IsRelevant      bool           `json:"is_relevant"`
	ActionStatus    ActionStatus   `json:"action_status,omitempty"`
	ExclusionLevel  ExclusionLevel `json:"exclusion_level,omitempty"`
	ProcessedAt     string         `json:"processed_at,omitempty"`
	AdGroupID       string         `json:"ad_group_id,omitempty"`
	AdGroupName     string         `json:"ad_group_name,omitempty"`
	CampaignID      string         `json:"campaign_id,omitempty"`
	CampaignName    string         `json:"campaign_name,omitempty"`
	CustomerID      string         `json:"customer_id,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	MatchType       string         `json:"match_type,omitempty"`
	CreatedAt       string         `json:"CreatedAt,omitempty"`
}

func (r SearchTermRecord) IsExcluded() bool {
	return r.ActionStatus == ActionStatusExcluded
}

// SearchTermUpdate é o PATCH de status enviado ao NocoDB
type SearchTermUpdate struct {
	ID             int64          `json:"id"`
	ActionStatus   ActionStatus   `json:"action_status"`
	ExclusionLevel ExclusionLevel `json:"exclusion_level,omitempty"`
}

func (u SearchTermUpdate) Fields() map[string]any {
	fields := map[string]any{
		"action_status": u.ActionStatus,
	}
	if u.ExclusionLevel != "" {
		fields["exclusion_level"] = u.ExclusionLevel
	}
	return fields
}

// ExclusionTerm é o formato que o workflow de negativação espera
type ExclusionTerm struct {
	ID           int64   `json:"id"`
	SearchTerm   string  `json:"search_term"`
	Cost         float64 `json:"cost"`
	Clicks       int64   `json:"clicks"`
	Impressions  int64   `json:"impressions"`
	Reason       string  `json:"reason"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdGroupID    string  `json:"ad_group_id"`
	AdGroupName  string  `json:"ad_group_name"`
	MatchType    string  `json:"match_type"`
}

func NewExclusionTerm(r SearchTermRecord) ExclusionTerm {
	matchType := r.MatchType
	if matchType == "" {
		matchType = DefaultMatchType
	}

	return ExclusionTerm{
		ID:           r.ID,
		SearchTerm:   r.SearchTerm,
		Cost:         r.Cost,
		Clicks:       r.Clicks,
		Impressions:  r.Impressions,
		Reason:       r.Reason,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		AdGroupID:    r.AdGroupID,
		AdGroupName:  r.AdGroupName,
		MatchType:    matchType,
	}
}

const ApplyExclusionsAction = "apply_exclusions"

type ExclusionPayload struct {
	Action         string          `json:"action"`
	ExclusionLevel ExclusionLevel  `json:"exclusion_level"`
	TermsToExclude []ExclusionTerm `json:"terms_to_exclude"`
	TotalCount     int             `json:"total_count"`
}

func (p ExclusionPayload) TermIDs() []int64 {
	ids := make([]int64, 0, len(p.TermsToExclude))
	for _, t := range p.TermsToExclude {
		ids = append(ids, t.ID)
	}
	return ids
}

// ExclusionRequest é o resultado da etapa de confirmação da triagem
type ExclusionRequest struct {
	Payload ExclusionPayload
	Savings float64
	Terms   []string
}

// ExclusionResult é devolvido ao painel após a submissão
type ExclusionResult struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Level   string   `json:"level"`
	Savings float64  `json:"savings"`
	Terms   []string `json:"terms"`
	Error   string   `json:"error,omitempty"`
}
