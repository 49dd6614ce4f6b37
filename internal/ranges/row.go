package ranges

import (
	"github.com/ytget/gapline/internal/model"
)

// Row is one rendered entry of the range table and timeline.
type Row struct {
	Index    int
	Range    model.DateRange
	Start    string // DD-MM-YYYY
	End      string // DD-MM-YYYY
	Duration int

	// Gap and Status are meaningful only when HasGap is true
	Gap    int
	HasGap bool
	Status model.GapStatus
}

// Summary aggregates the whole list.
type Summary struct {
	Count         int
	TotalDuration int
	TotalGap      int
	LongestGap    int
	HasGap        bool
	ExceededGaps  int
}

// Rows builds the view in list order. With a nil classifier Status stays empty.
func (s *Store) Rows(c Classifier) []Row {
	rows := make([]Row, 0, len(s.ranges))
	for i, r := range s.ranges {
		row := Row{
			Index:    i,
			Range:    r,
			Start:    r.Start.Format(),
			End:      r.End.Format(),
			Duration: s.DurationOf(r),
		}
		if gap, ok := s.GapBefore(i); ok {
			row.Gap = gap
			row.HasGap = true
			if c != nil {
				row.Status = c.Classify(gap)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary computes totals over the current rows
func (s *Store) Summary(c Classifier) Summary {
	var sum Summary
	for _, row := range s.Rows(c) {
		sum.Count++
		sum.TotalDuration += row.Duration
		if !row.HasGap {
			continue
		}
		sum.TotalGap += row.Gap
		if !sum.HasGap || row.Gap > sum.LongestGap {
			sum.LongestGap = row.Gap
		}
		sum.HasGap = true
		if row.Status.IsExceeded() {
			sum.ExceededGaps++
		}
	}
	return sum
}
