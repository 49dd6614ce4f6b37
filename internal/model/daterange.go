package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RangeIDPrefix marks generated range identifiers.
const RangeIDPrefix = "range_"

// DateRange is one user-entered (start, end) pair.
//
// Order is the list length at the moment the range was appended. It is a
// creation-sequence tag, not a live position: removing an earlier range
// does not renumber it.
type DateRange struct {
	ID    string
	Order int
	Start Date
	End   Date
}

// NewDateRange creates a range with a fresh ID. No ordering between start
// and end is enforced.
func NewDateRange(order int, start, end Date) DateRange {
	return DateRange{
		ID:    generateRangeID(),
		Order: order,
		Start: start,
		End:   end,
	}
}

// Duration returns End minus Start in days. Reversed ranges give a negative value.
func (r DateRange) Duration() int {
	return r.Start.DaysUntil(r.End)
}

// GapAfter returns the days from prev's end to this range's start.
func (r DateRange) GapAfter(prev DateRange) int {
	return prev.End.DaysUntil(r.Start)
}

// String returns start..end in ISO form.
func (r DateRange) String() string {
	return fmt.Sprintf("#%d %s..%s", r.Order, r.Start, r.End)
}

// generateRangeID uses UUID v7 so IDs sort by creation time
func generateRangeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RangeIDPrefix+"%d", time.Now().UnixNano())
	}
	return RangeIDPrefix + id.String()
}
