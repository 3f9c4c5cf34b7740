package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/habit-tracker/internal/stats"
)

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "language %s", code) {
			continue
		}
		for key := range english {
			assert.Contains(t, texts, key, "language %s", code)
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Настройки", l.GetText(KeySettings))

	// unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_Textf(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Day 7", l.Textf(KeyDayFormat, 7))
	assert.Equal(t, "YouTube: 12/30 days (40%)", l.Textf(KeyInsightFormat, "YouTube", 12, 40.0))

	l.SetLanguage("pt")
	assert.Equal(t, "Dia 7", l.Textf(KeyDayFormat, 7))
}

func TestLocalization_TierMessage(t *testing.T) {
	l := NewLocalization()

	seen := map[string]bool{}
	for _, tier := range []stats.Tier{stats.TierFirstStep, stats.TierMomentum, stats.TierHalfway, stats.TierCrushing, stats.TierChampion} {
		msg := l.TierMessage(tier)
		assert.NotEmpty(t, msg)
		seen[msg] = true
	}
	assert.Len(t, seen, 5)
	assert.Contains(t, l.TierMessage(stats.TierChampion), "champion")
}

func TestLocalization_FilterLabel(t *testing.T) {
	l := NewLocalization()
	for _, f := range stats.Filters() {
		assert.Equal(t, f.String(), l.FilterLabel(f))
	}
}
