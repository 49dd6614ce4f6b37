package ranges

import (
	"github.com/ytget/gapline/internal/model"
)

// Classifier decides whether a gap is acceptable.
type Classifier interface {
	Classify(gap int) model.GapStatus
}

// Keeper defines the interface for the range store.
type Keeper interface {
	Append(start, end model.Date) (model.DateRange, bool)
	RemoveAt(index int)
	Clear()
	Len() int
	At(index int) model.DateRange
	All() []model.DateRange
	DurationOf(r model.DateRange) int
	GapBefore(index int) (int, bool)

	// Rows builds the render view; c may be nil to skip classification
	Rows(c Classifier) []Row

	// Summary aggregates the list for the status line
	Summary(c Classifier) Summary
}
