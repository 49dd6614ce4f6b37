package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gapline/internal/ranges"
)

// RangeRow is one line of the range table: start, end, duration, gap and a
// delete button.
type RangeRow struct {
	widget.BaseWidget

	row          ranges.Row
	localization *Localization

	startLabel    *widget.Label
	endLabel      *widget.Label
	durationLabel *widget.Label
	gapLabel      *widget.Label
	deleteBtn     *widget.Button

	onRemove func(index int)
}

// NewRangeRow creates an empty row; Update fills it
func NewRangeRow(localization *Localization) *RangeRow {
	rr := &RangeRow{localization: localization}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

// SetOnRemove sets the delete callback; it receives the row's current index
func (rr *RangeRow) SetOnRemove(onRemove func(index int)) {
	rr.onRemove = onRemove
}

// Update shows the given row
func (rr *RangeRow) Update(row ranges.Row) {
	rr.row = row

	rr.startLabel.SetText(row.Start)
	rr.endLabel.SetText(row.End)
	rr.durationLabel.SetText(rr.localization.Days(row.Duration))

	if !row.HasGap {
		rr.gapLabel.Importance = widget.MediumImportance
		rr.gapLabel.SetText(DashPlaceholder)
		return
	}

	text := rr.localization.Days(row.Gap)
	if row.Status.IsExceeded() {
		text = IconWarning + " " + text
	}
	rr.gapLabel.Importance = GapImportance(row.Status)
	rr.gapLabel.SetText(text)
}

func (rr *RangeRow) createUI() {
	rr.startLabel = widget.NewLabel("")
	rr.endLabel = widget.NewLabel("")
	rr.durationLabel = widget.NewLabel("")
	rr.durationLabel.Alignment = fyne.TextAlignTrailing
	rr.gapLabel = widget.NewLabel("")
	rr.gapLabel.Alignment = fyne.TextAlignTrailing

	rr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if rr.onRemove == nil {
			log.Printf("onRemove callback is nil for range %s", rr.row.Range.ID)
			return
		}
		rr.onRemove(rr.row.Index)
	})
	rr.deleteBtn.Importance = widget.DangerImportance
}

// CreateRenderer creates the widget renderer
func (rr *RangeRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewGridWithColumns(RangeRowColumns,
		rr.startLabel,
		rr.endLabel,
		rr.durationLabel,
		rr.gapLabel,
		rr.deleteBtn,
	))
}
