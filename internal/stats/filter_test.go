package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/habit-tracker/internal/model"
)

func TestFilter_Apply(t *testing.T) {
	table := model.Create(start)
	fill(t, &table, 3, 10)
	fill(t, &table, 12, 10)
	fill(t, &table, 13, 9)

	assert.Len(t, FilterAll.Apply(table), model.ChallengeDays)
	assert.Equal(t, []int{2, 11}, FilterPerfect.Apply(table))
	assert.Len(t, FilterIncomplete.Apply(table), model.ChallengeDays-2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, FilterThisWeek.Apply(table))
}

func TestFilter_String(t *testing.T) {
	labels := map[Filter]string{
		FilterAll:        "All Days",
		FilterIncomplete: "Incomplete Only",
		FilterPerfect:    "Perfect Days",
		FilterThisWeek:   "This Week",
		Filter(42):       "Unknown",
	}
	for f, label := range labels {
		assert.Equal(t, label, f.String())
	}
	assert.Len(t, Filters(), 4)
}
