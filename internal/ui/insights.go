package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/habit-tracker/internal/model"
	"github.com/ytget/habit-tracker/internal/stats"
)

// InsightsPanel lists the most and least consistent platforms side by side.
type InsightsPanel struct {
	localization *Localization

	container    *fyne.Container
	title        *widget.Label
	topTitle     *widget.Label
	bottomTitle  *widget.Label
	topLabels    []*widget.Label
	bottomLabels []*widget.Label
}

// NewInsightsPanel creates the platform rankings panel
func NewInsightsPanel(localization *Localization) *InsightsPanel {
	ip := &InsightsPanel{localization: localization}
	ip.createUI()
	return ip
}

// Container returns the panel's root object
func (ip *InsightsPanel) Container() *fyne.Container {
	return ip.container
}

func (ip *InsightsPanel) createUI() {
	ip.title = widget.NewLabel("")
	ip.title.TextStyle = fyne.TextStyle{Bold: true}
	ip.topTitle = widget.NewLabel("")
	ip.topTitle.TextStyle = fyne.TextStyle{Bold: true}
	ip.bottomTitle = widget.NewLabel("")
	ip.bottomTitle.TextStyle = fyne.TextStyle{Bold: true}

	top := container.NewVBox(ip.topTitle)
	bottom := container.NewVBox(ip.bottomTitle)
	for i := 0; i < InsightsCount; i++ {
		ip.topLabels = append(ip.topLabels, widget.NewLabel(""))
		ip.bottomLabels = append(ip.bottomLabels, widget.NewLabel(""))
		top.Add(ip.topLabels[i])
		bottom.Add(ip.bottomLabels[i])
	}

	ip.container = container.NewVBox(
		ip.title,
		container.NewGridWithColumns(2, top, bottom),
	)
	ip.RefreshTexts()
}

// RefreshTexts re-reads the localized headings
func (ip *InsightsPanel) RefreshTexts() {
	ip.title.SetText(IconInsights + " " + ip.localization.GetText(KeyInsights))
	ip.topTitle.SetText(ip.localization.GetText(KeyMostConsistent))
	ip.bottomTitle.SetText(ip.localization.GetText(KeyNeedsAttention))
}

// Update renders the rankings of t
func (ip *InsightsPanel) Update(t model.Table) {
	ip.fill(ip.topLabels, stats.MostConsistent(t, InsightsCount))
	ip.fill(ip.bottomLabels, stats.NeedsAttention(t, InsightsCount))
}

func (ip *InsightsPanel) fill(labels []*widget.Label, ranked []stats.PlatformTotal) {
	for i, label := range labels {
		if i >= len(ranked) {
			label.SetText("")
			continue
		}
		pt := ranked[i]
		label.SetText(ip.localization.Textf(KeyInsightFormat, pt.Name, pt.Days, pt.Percent()))
	}
}

// Lines returns the rendered ranking lines, top list first
func (ip *InsightsPanel) Lines() (top, bottom []string) {
	for i := range ip.topLabels {
		top = append(top, ip.topLabels[i].Text)
		bottom = append(bottom, ip.bottomLabels[i].Text)
	}
	return top, bottom
}
