package domain

import "time"

type Preferences struct {
	UserEmail         string    `json:"-"`
	DateRangeID       string    `json:"date_range_id"`
	CustomDateRange   DateRange `json:"custom_date_range"`
	VisibleAccountIDs []string  `json:"visible_account_ids"`
	SidebarCollapsed  bool      `json:"sidebar_collapsed"`
	SelectedClientID  int64     `json:"selected_client_id"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func DefaultPreferences(email string) *Preferences {
	return &Preferences{
		UserEmail:         email,
		DateRangeID:       DefaultDateRangeID,
		VisibleAccountIDs: []string{},
	}
}

// ResolvedDateRange resolve o período salvo, voltando ao padrão se for desconhecido
func (p *Preferences) ResolvedDateRange(today time.Time) DateRange {
	if p.DateRangeID == DateRangeCustom && !p.CustomDateRange.IsZero() {
		return p.CustomDateRange
	}
	return ResolveDateRange(p.DateRangeID, today)
}

// UpdatePreferencesRequest é o PUT parcial das preferências
type UpdatePreferencesRequest struct {
	DateRangeID       *string    `json:"date_range_id"`
	CustomDateRange   *DateRange `json:"custom_date_range"`
	VisibleAccountIDs []string   `json:"visible_account_ids"`
	SidebarCollapsed  *bool      `json:"sidebar_collapsed"`
	SelectedClientID  *int64     `json:"selected_client_id"`
}
