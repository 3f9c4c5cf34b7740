package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/habit-tracker/internal/model"
)

// accentWidth is the width of the status stripe on the left of a card.
const accentWidth float32 = 4

// DayCard shows one day of the challenge: a status header, the post count
// and one checkbox per platform. In compact mode the checkboxes sit in a
// single column; the detailed mode lays them out in two columns and adds a
// note for perfect and empty days.
type DayCard struct {
	widget.BaseWidget

	localization *Localization
	detailed     bool
	record       model.DayRecord

	// UI components
	accent     *canvas.Rectangle
	accordion  *widget.Accordion
	item       *widget.AccordionItem
	dateLabel  *widget.Label
	countLabel *widget.Label
	noteLabel  *widget.Label
	progress   *widget.ProgressBar
	checks     [model.PlatformCount]*widget.Check

	// set while the card itself moves the checkboxes, so OnChanged does
	// not report the change back as a user toggle
	updating bool

	onToggle func(day int, p model.Platform, value bool)
}

// NewDayCard creates a card for record.
func NewDayCard(record model.DayRecord, localization *Localization, detailed bool) *DayCard {
	c := &DayCard{
		localization: localization,
		detailed:     detailed,
		record:       record,
	}
	c.ExtendBaseWidget(c)
	c.createUI()
	c.SetRecord(record)
	return c
}

// SetOnToggle sets the callback fired when the user ticks or clears a platform.
func (c *DayCard) SetOnToggle(onToggle func(day int, p model.Platform, value bool)) {
	c.onToggle = onToggle
}

// Record returns the day currently shown.
func (c *DayCard) Record() model.DayRecord {
	return c.record
}

// SetRecord updates the card with new day data.
func (c *DayCard) SetRecord(record model.DayRecord) {
	c.record = record
	posts := record.Posts()
	status := record.Status()

	c.updating = true
	for i, p := range model.Platforms() {
		if c.checks[i].Checked != record.Flag(p) {
			c.checks[i].SetChecked(record.Flag(p))
		}
	}
	c.updating = false

	c.item.Title = c.title()
	c.dateLabel.SetText(record.Date.Format(model.DateLayout))
	c.countLabel.SetText(c.localization.Textf(KeyPlatformsFormat, posts))
	c.progress.SetValue(float64(posts) / model.PlatformCount)
	c.accent.FillColor = StatusColor(status)

	c.noteLabel.Hide()
	if c.detailed {
		switch {
		case status.IsComplete():
			c.noteLabel.SetText(c.localization.GetText(KeyPerfectDayNote))
			c.noteLabel.Show()
		case posts == 0:
			c.noteLabel.SetText(c.localization.GetText(KeyEmptyDayNote))
			c.noteLabel.Show()
		}
	}

	c.accent.Refresh()
	c.accordion.Refresh()
}

// Expand opens the card's checklist.
func (c *DayCard) Expand() {
	c.accordion.Open(0)
}

// Collapse closes the card's checklist.
func (c *DayCard) Collapse() {
	c.accordion.Close(0)
}

// RefreshTexts re-reads every localized string.
func (c *DayCard) RefreshTexts() {
	c.SetRecord(c.record)
}

func (c *DayCard) title() string {
	icon := StatusIcon(c.record.Status())
	day := c.localization.Textf(KeyDayFormat, c.record.Day)
	if c.detailed {
		return fmt.Sprintf("%s %s - %s (%d/%d)", icon, day, c.record.Date.Format(model.DateLayout),
			c.record.Posts(), model.PlatformCount)
	}
	return day + " " + icon
}

// createUI creates the UI components
func (c *DayCard) createUI() {
	c.accent = canvas.NewRectangle(ColorEmpty)
	c.accent.SetMinSize(fyne.NewSize(accentWidth, 0))

	c.dateLabel = widget.NewLabel("")
	c.dateLabel.TextStyle = fyne.TextStyle{Italic: true}
	c.countLabel = widget.NewLabel("")
	c.noteLabel = widget.NewLabel("")
	c.noteLabel.Wrapping = fyne.TextWrapWord
	c.progress = widget.NewProgressBar()
	c.progress.TextFormatter = func() string { return "" }

	checks := make([]fyne.CanvasObject, 0, model.PlatformCount)
	for i, p := range model.Platforms() {
		platform := p // Capture for closure
		c.checks[i] = widget.NewCheck(platform.String(), func(value bool) {
			if c.updating {
				return
			}
			if c.onToggle != nil {
				c.onToggle(c.record.Day, platform, value)
			}
		})
		checks = append(checks, c.checks[i])
	}

	var checkGrid fyne.CanvasObject
	var detail *fyne.Container
	if c.detailed {
		checkGrid = container.NewGridWithColumns(CheckColumns, columnOrder(checks)...)
		detail = container.NewVBox(c.progress, checkGrid, c.noteLabel)
	} else {
		checkGrid = container.NewVBox(checks...)
		detail = container.NewVBox(c.dateLabel, c.progress, c.countLabel, checkGrid)
	}

	c.item = widget.NewAccordionItem("", detail)
	c.accordion = widget.NewAccordion(c.item)
}

// columnOrder reorders items so a row-major grid reads top to bottom, first
// column then second.
func columnOrder(items []fyne.CanvasObject) []fyne.CanvasObject {
	rows := (len(items) + CheckColumns - 1) / CheckColumns
	out := make([]fyne.CanvasObject, 0, len(items))
	for r := 0; r < rows; r++ {
		for col := 0; col < CheckColumns; col++ {
			if i := col*rows + r; i < len(items) {
				out = append(out, items[i])
			}
		}
	}
	return out
}

// MinSize keeps compact cards from collapsing below a readable width.
func (c *DayCard) MinSize() fyne.Size {
	size := c.BaseWidget.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	return size
}

// CreateRenderer creates the widget renderer
func (c *DayCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, c.accent, nil, c.accordion)
	return widget.NewSimpleRenderer(content)
}
