package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gapline/internal/ranges"
)

// Timeline renders rows as a vertical sequence: gap to the previous range,
// start date, duration, end date.
type Timeline struct {
	localization *Localization
	box          *fyne.Container
	scroll       *container.Scroll
	lines        []string
}

// NewTimeline creates an empty timeline
func NewTimeline(localization *Localization) *Timeline {
	t := &Timeline{
		localization: localization,
		box:          container.NewVBox(),
	}
	t.scroll = container.NewVScroll(t.box)
	t.SetRows(nil)
	return t
}

// Container returns the scrollable timeline
func (t *Timeline) Container() fyne.CanvasObject {
	return t.scroll
}

// Lines returns the text of every item currently shown
func (t *Timeline) Lines() []string {
	return t.lines
}

// SetRows rebuilds the timeline
func (t *Timeline) SetRows(rows []ranges.Row) {
	t.box.Objects = nil
	t.lines = t.lines[:0]

	if len(rows) == 0 {
		empty := widget.NewLabel(t.localization.GetText(KeyNoRanges))
		empty.Alignment = fyne.TextAlignCenter
		t.add(empty)
		t.box.Refresh()
		return
	}

	for _, row := range rows {
		if row.HasGap {
			gap := widget.NewLabel(IconGap + " " + t.localization.Days(row.Gap))
			gap.Importance = GapImportance(row.Status)
			t.add(gap)
		}

		start := widget.NewLabel(IconCalendar + " " + t.localization.GetText(KeyStartDate) + ": " + row.Start)
		start.TextStyle = fyne.TextStyle{Bold: true}
		t.add(start)

		t.add(widget.NewLabel(IconDuration + " " + t.localization.Days(row.Duration)))

		end := widget.NewLabel(IconCalendar + " " + t.localization.GetText(KeyEndDate) + ": " + row.End)
		end.TextStyle = fyne.TextStyle{Bold: true}
		t.add(end)
	}
	t.box.Refresh()
}

func (t *Timeline) add(label *widget.Label) {
	t.box.Add(label)
	t.lines = append(t.lines, label.Text)
}
