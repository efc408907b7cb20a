package domain

import (
	"errors"
	"time"

	"github.com/accolades/ads-dashboard-api/pkg/utils"
)

// LastThirtyDaysLabel é usado na resposta quando nenhum período é informado
const LastThirtyDaysLabel = "LAST_30_DAYS"

const (
	DateRangeToday     = "today"
	DateRangeYesterday = "yesterday"
	DateRangeLast7     = "last7"
	DateRangeLast14    = "last14"
	DateRangeLast30    = "last30"
	DateRangeLast90    = "last90"
	DateRangeThisMonth = "thisMonth"
	DateRangeLastMonth = "lastMonth"
	DateRangeCustom    = "custom"

	DefaultDateRangeID = DateRangeLast30
)

var ErrInvalidDateRange = errors.New("période invalide")

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// IsZero indica que nenhum período foi informado
func (d DateRange) IsZero() bool {
	return d.StartDate == "" && d.EndDate == ""
}

type DateRangePreset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Days  int    `json:"-"`
}

var dateRangePresets = []DateRangePreset{
	{ID: DateRangeToday, Label: "Aujourd'hui", Days: 0},
	{ID: DateRangeYesterday, Label: "Hier", Days: 1},
	{ID: DateRangeLast7, Label: "7 derniers jours", Days: 7},
	{ID: DateRangeLast14, Label: "14 derniers jours", Days: 14},
	{ID: DateRangeLast30, Label: "30 derniers jours", Days: 30},
	{ID: DateRangeThisMonth, Label: "Ce mois-ci"},
	{ID: DateRangeLastMonth, Label: "Mois dernier"},
	{ID: DateRangeLast90, Label: "90 derniers jours", Days: 90},
}

func DateRangePresets() []DateRangePreset {
	presets := make([]DateRangePreset, len(dateRangePresets))
	copy(presets, dateRangePresets)
	return presets
}

func IsKnownDateRange(id string) bool {
	if id == DateRangeCustom {
		return true
	}
	_, ok := findPreset(id)
	return ok
}

func findPreset(id string) (DateRangePreset, bool) {
	for _, preset := range dateRangePresets {
		if preset.ID == id {
			return preset, true
		}
	}
	return DateRangePreset{}, false
}

// ResolveDateRange converte um preset em datas explícitas relativas a "today".
// IDs desconhecidos (inclusive "custom") caem no padrão de 30 dias.
func ResolveDateRange(id string, today time.Time) DateRange {
	today = truncateToDay(today)

	preset, ok := findPreset(id)
	if !ok {
		return lastNDays(today, 30)
	}

	switch preset.ID {
	case DateRangeToday:
		return DateRange{StartDate: formatDate(today), EndDate: formatDate(today)}
	case DateRangeYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return DateRange{StartDate: formatDate(yesterday), EndDate: formatDate(yesterday)}
	case DateRangeThisMonth:
		startOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{StartDate: formatDate(startOfMonth), EndDate: formatDate(today)}
	case DateRangeLastMonth:
		startOfLastMonth := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		endOfLastMonth := time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, today.Location())
		return DateRange{StartDate: formatDate(startOfLastMonth), EndDate: formatDate(endOfLastMonth)}
	}

	return lastNDays(today, preset.Days)
}

// NewCustomDateRange valida um período informado manualmente
func NewCustomDateRange(start, end string) (DateRange, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil || startDate == nil {
		return DateRange{}, ErrInvalidDateRange
	}

	endDate, err := utils.ParseDate(end)
	if err != nil || endDate == nil {
		return DateRange{}, ErrInvalidDateRange
	}

	if endDate.Before(*startDate) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{StartDate: start, EndDate: end}, nil
}

func lastNDays(today time.Time, days int) DateRange {
	start := today.AddDate(0, 0, -days)
	return DateRange{StartDate: formatDate(start), EndDate: formatDate(today)}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatDate(t time.Time) string {
	return utils.FormatDate(t)
}
