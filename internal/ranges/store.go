package ranges

import (
	"fmt"
	"log"

	"github.com/ytget/gapline/internal/model"
)

var _ Keeper = (*Store)(nil)

// Store holds the ordered list of date ranges.
// It is used from the UI event thread only and does no locking.
type Store struct {
	ranges []model.DateRange
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		ranges: make([]model.DateRange, 0),
	}
}

// Append adds a range at the end of the list. A missing endpoint makes the
// call a no-op and the second result is false.
func (s *Store) Append(start, end model.Date) (model.DateRange, bool) {
	if start.IsZero() || end.IsZero() {
		log.Printf("Ignoring range with missing endpoint: start=%s end=%s", start, end)
		return model.DateRange{}, false
	}

	r := model.NewDateRange(len(s.ranges), start, end)
	s.ranges = append(s.ranges, r)
	return r, true
}

// RemoveAt deletes the range at index and shifts the rest left. Order tags
// of the remaining ranges are left as they were.
//
// An index outside [0, Len()) is a caller bug and panics.
func (s *Store) RemoveAt(index int) {
	s.mustIndex(index)
	s.ranges = append(s.ranges[:index], s.ranges[index+1:]...)
}

// Clear removes every range
func (s *Store) Clear() {
	s.ranges = s.ranges[:0]
}

// Len returns the number of ranges
func (s *Store) Len() int {
	return len(s.ranges)
}

// At returns the range at index; panics when out of range
func (s *Store) At(index int) model.DateRange {
	s.mustIndex(index)
	return s.ranges[index]
}

// All returns a copy of the list
func (s *Store) All() []model.DateRange {
	out := make([]model.DateRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// DurationOf returns end minus start in days
func (s *Store) DurationOf(r model.DateRange) int {
	return r.Duration()
}

// GapBefore returns the days between the previous range's end and the start
// of the range at index. The first range has no predecessor and reports false.
func (s *Store) GapBefore(index int) (int, bool) {
	s.mustIndex(index)
	if index == 0 {
		return 0, false
	}
	return s.ranges[index].GapAfter(s.ranges[index-1]), true
}

func (s *Store) mustIndex(index int) {
	if index < 0 || index >= len(s.ranges) {
		panic(fmt.Sprintf("ranges: index %d out of range [0,%d)", index, len(s.ranges)))
	}
}
