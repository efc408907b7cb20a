package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange(t *testing.T) {
	today := time.Date(2025, 3, 15, 17, 42, 0, 0, time.UTC)

	tests := []struct {
		id       string
		expected DateRange
	}{
		{DateRangeToday, DateRange{StartDate: "2025-03-15", EndDate: "2025-03-15"}},
		{DateRangeYesterday, DateRange{StartDate: "2025-03-14", EndDate: "2025-03-14"}},
		{DateRangeLast7, DateRange{StartDate: "2025-03-08", EndDate: "2025-03-15"}},
		{DateRangeLast14, DateRange{StartDate: "2025-03-01", EndDate: "2025-03-15"}},
		{DateRangeLast30, DateRange{StartDate: "2025-02-13", EndDate: "2025-03-15"}},
		{DateRangeLast90, DateRange{StartDate: "2024-12-15", EndDate: "2025-03-15"}},
		{DateRangeThisMonth, DateRange{StartDate: "2025-03-01", EndDate: "2025-03-15"}},
		{DateRangeLastMonth, DateRange{StartDate: "2025-02-01", EndDate: "2025-02-28"}},
		{DateRangeCustom, DateRange{StartDate: "2025-02-13", EndDate: "2025-03-15"}},
		{"desconhecido", DateRange{StartDate: "2025-02-13", EndDate: "2025-03-15"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDateRange(tt.id, today))
		})
	}
}

func TestResolveDateRange_LastMonthInJanuary(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DateRange{StartDate: "2024-12-01", EndDate: "2024-12-31"}, ResolveDateRange(DateRangeLastMonth, today))
}

func TestNewCustomDateRange(t *testing.T) {
	dr, err := NewCustomDateRange("2025-03-01", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, DateRange{StartDate: "2025-03-01", EndDate: "2025-03-10"}, dr)

	_, err = NewCustomDateRange("2025-03-10", "2025-03-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewCustomDateRange("", "2025-03-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewCustomDateRange("2025-03-01", "10/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateRangePresets(t *testing.T) {
	presets := DateRangePresets()
	presets[0].Label = "alterado"

	assert.NotEqual(t, "alterado", DateRangePresets()[0].Label)
	assert.True(t, IsKnownDateRange(DateRangeCustom))
	assert.True(t, IsKnownDateRange(DateRangeLast90))
	assert.False(t, IsKnownDateRange("last365"))
}

func TestPreferences_ResolvedDateRange(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	custom := &Preferences{
		DateRangeID:     DateRangeCustom,
		CustomDateRange: DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"},
	}
	assert.Equal(t, DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"}, custom.ResolvedDateRange(today))

	emptyCustom := &Preferences{DateRangeID: DateRangeCustom}
	assert.Equal(t, ResolveDateRange(DefaultDateRangeID, today), emptyCustom.ResolvedDateRange(today))

	preset := DefaultPreferences("ana@accolades.marketing")
	assert.Equal(t, ResolveDateRange(DateRangeLast30, today), preset.ResolvedDateRange(today))
	assert.Empty(t, preset.VisibleAccountIDs)
}
