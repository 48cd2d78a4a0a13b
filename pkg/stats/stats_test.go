package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
)

func cost(v float64) *float64 { return &v }

func ids(logs []entities.LogRecord) []string {
	out := make([]string, 0, len(logs))
	for _, r := range logs {
		out = append(out, r.ID)
	}
	return out
}

// ------------------------------------------------------------
// Filter
// ------------------------------------------------------------

func TestApply_BlockFilterKeepsRelativeOrder(t *testing.T) {
	logs := catalog.SeedLogs()
	got := Apply(logs, FilterFrom("BLOCK A", ""))
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterFrom_AllIsAnOrdinaryTypeID(t *testing.T) {
	logs := append(catalog.SeedLogs(), entities.LogRecord{ID: "9", Date: "2024-01-01", Type: "all", BlockID: "BLOCK A"})

	f := FilterFrom("", "all")
	require.NotNil(t, f.ActivityType)
	assert.Equal(t, []string{"9"}, ids(Apply(logs, f)))
	assert.Equal(t, []string{"1", "3", "9"}, ids(Apply(logs, FilterFrom("BLOCK A", ""))))
}

func TestApply_NoFilterReturnsEverything(t *testing.T) {
	logs := catalog.SeedLogs()
	assert.Equal(t, ids(logs), ids(Apply(logs, Filter{})))
}

func TestApply_CommutativeAndIdempotent(t *testing.T) {
	logs := catalog.SeedLogs()
	byBlock := FilterFrom("BLOCK B", "")
	byType := FilterFrom("", "irrigation")

	ab := Apply(Apply(logs, byBlock), byType)
	ba := Apply(Apply(logs, byType), byBlock)
	assert.Equal(t, ids(ab), ids(ba))
	assert.Equal(t, []string{"4"}, ids(ab))

	once := Apply(logs, byBlock)
	assert.Equal(t, ids(once), ids(Apply(once, byBlock)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	logs := catalog.SeedLogs()
	before := ids(logs)
	_ = Apply(logs, FilterFrom("BLOCK A", ""))
	_ = SortForDisplay(logs)
	assert.Equal(t, before, ids(logs))
}

func TestSortForDisplay(t *testing.T) {
	logs := []entities.LogRecord{
		{ID: "a", Date: "2024-01-01", CreatedAt: 5},
		{ID: "b", Date: "2024-03-01", CreatedAt: 1},
		{ID: "c", Date: "2024-01-01", CreatedAt: 9},
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids(SortForDisplay(logs)))
}

func TestBlockOptions(t *testing.T) {
	blocks := []entities.BlockDefinition{{ID: "North", Name: "North"}, {ID: "BLOCK A", Name: "BLOCK A"}}
	got := BlockOptions(blocks, catalog.SeedLogs())
	assert.Equal(t, []string{"BLOCK A", "BLOCK B", "North"}, got)
}

// ------------------------------------------------------------
// Aggregation
// ------------------------------------------------------------

func TestAggregate_CostModeDropsZeroGroups(t *testing.T) {
	logs := []entities.LogRecord{
		{ID: "1", Type: "irrigation"},
		{ID: "2", Type: "fertilization", Cost: cost(1200)},
	}
	assert.Equal(t, map[string]float64{"fertilization": 1200}, Aggregate(logs, ModeCost))
	assert.Equal(t, map[string]float64{"irrigation": 1, "fertilization": 1}, Aggregate(logs, ModeCount))
}

func TestAggregate_ExplicitZeroCostDropped(t *testing.T) {
	logs := []entities.LogRecord{{Type: "labor", Cost: cost(0)}, {Type: "labor", Cost: cost(0)}}
	assert.Empty(t, Aggregate(logs, ModeCost))
}

func TestTotalCostAndSummary(t *testing.T) {
	logs := catalog.SeedLogs()
	assert.InDelta(t, 4700, TotalCost(logs), 0.0001)

	s := Summarize(logs, entities.LangEN)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "4,700", s.TotalCostText)
}

func TestChart_OrdersByValueAndResolvesLabels(t *testing.T) {
	defs := catalog.DefaultActivities()
	got := Chart(catalog.SeedLogs(), defs, entities.LangTR, ModeCount)
	require.Len(t, got, 3)
	assert.Equal(t, "irrigation", got[0].Type)
	assert.Equal(t, "Sulama", got[0].Label)
	assert.InDelta(t, 2, got[0].Value, 0.0001)
	assert.Equal(t, "fertilization", got[1].Type)
	assert.Equal(t, "pruning", got[2].Type)
}

func TestChart_DanglingTypeFallsBack(t *testing.T) {
	logs := []entities.LogRecord{{Type: "grafting", Cost: cost(10)}}
	got := Chart(logs, catalog.DefaultActivities(), entities.LangEN, ModeCost)
	require.Len(t, got, 1)
	assert.Equal(t, "grafting", got[0].Label)
	assert.Equal(t, catalog.FallbackColor, got[0].Color)
	assert.Equal(t, entities.IconStar, got[0].Icon)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeCount, m)
	_, err = ParseMode("weight")
	assert.Error(t, err)
}

// ------------------------------------------------------------
// Duration
// ------------------------------------------------------------

func TestDuration(t *testing.T) {
	h, ok := Duration("06:00", "08:30")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, h, 0.0001)

	h, ok = Duration("22:00", "02:20")
	assert.True(t, ok)
	assert.InDelta(t, 4.3, h, 0.0001)

	_, ok = Duration("", "02:00")
	assert.False(t, ok)
	_, ok = Duration("25:00", "02:00")
	assert.False(t, ok)
}
