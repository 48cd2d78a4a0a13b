package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"orchardlog/entities"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "4,700", FormatAmount(4700, entities.LangEN))
	assert.Equal(t, "1,235", FormatAmount(1234.6, entities.LangEN))
	assert.Equal(t, "0", FormatAmount(0, entities.LangEN))
	assert.Equal(t, "4.700", FormatAmount(4700, entities.LangTR))
}

func TestDates(t *testing.T) {
	d := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday, October 19, 2026", FullDate(d, entities.LangEN))
	assert.Equal(t, "19 Ekim 2026 Pazartesi", FullDate(d, entities.LangTR))
	assert.Equal(t, "October 19, 2026", LongDate(d, entities.LangEN))
	assert.Equal(t, "19 Ekim 2026", LongDate(d, entities.LangTR))
}

func TestFallbacksDifferPerLanguage(t *testing.T) {
	for _, f := range []Fallback{InsightsEmpty, InsightsUnavailable, ChatEmpty, ChatUnavailable, NoLogs} {
		assert.NotEmpty(t, Text(f, entities.LangEN))
		assert.NotEqual(t, Text(f, entities.LangEN), Text(f, entities.LangTR))
	}
	assert.Equal(t, "Service temporarily unavailable.", Text(InsightsUnavailable, entities.LangEN))

	for _, f := range []Fallback{InsightsEmpty, InsightsUnavailable} {
		assert.NotEqual(t, Text(NoLogs, entities.LangEN), Text(f, entities.LangEN))
	}
}

func TestCSVHeaders(t *testing.T) {
	assert.Len(t, CSVHeaders(entities.LangEN), 8)
	assert.Equal(t, "Tarih", CSVHeaders(entities.LangTR)[0])
}

func TestDefaultUnit(t *testing.T) {
	assert.Equal(t, "Liters", DefaultUnit(entities.TypeDiesel, entities.LangEN))
	assert.Equal(t, "Lt", DefaultUnit(entities.TypeFuel, entities.LangTR))
	assert.Equal(t, "Saat", DefaultUnit(entities.TypeTractorWork, entities.LangTR))
	assert.Equal(t, "Hours", DefaultUnit(entities.TypeHarvest, entities.LangEN))
	assert.Equal(t, "kg", DefaultUnit(entities.TypeFertilization, entities.LangTR))
	assert.Empty(t, DefaultUnit(entities.TypeIrrigation, entities.LangEN))
	assert.Empty(t, DefaultUnit("pruning", entities.LangEN))
}
