package ranges

import (
	"testing"
	"time"

	"github.com/ytget/gapline/internal/model"
)

func TestRows(t *testing.T) {
	store := NewStore()
	store.Append(day(2024, time.January, 1), day(2024, time.January, 10))
	store.Append(day(2024, time.February, 15), day(2024, time.February, 20))
	store.Append(day(2024, time.February, 25), day(2024, time.March, 1))

	rows := store.Rows(fixedClassifier(28))
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Start != "01-01-2024" || first.End != "10-01-2024" {
		t.Errorf("Unexpected formatted dates: %s / %s", first.Start, first.End)
	}
	if first.Duration != 9 {
		t.Errorf("Expected duration 9, got %d", first.Duration)
	}
	if first.HasGap || first.Status != "" {
		t.Errorf("First row should have no gap, got gap=%d status=%q", first.Gap, first.Status)
	}

	if !rows[1].HasGap || rows[1].Gap != 36 || rows[1].Status != model.GapStatusExceeded {
		t.Errorf("Expected second row gap 36 exceeded, got %+v", rows[1])
	}
	if !rows[2].HasGap || rows[2].Gap != 5 || rows[2].Status != model.GapStatusOK {
		t.Errorf("Expected third row gap 5 ok, got %+v", rows[2])
	}

	for i, row := range rows {
		if row.Index != i {
			t.Errorf("Row %d has index %d", i, row.Index)
		}
	}
}

func TestRows_NilClassifier(t *testing.T) {
	store := NewStore()
	store.Append(day(2024, time.January, 1), day(2024, time.January, 10))
	store.Append(day(2024, time.February, 15), day(2024, time.February, 20))

	rows := store.Rows(nil)
	if rows[1].Status != "" {
		t.Errorf("Expected empty status without classifier, got %q", rows[1].Status)
	}
	if rows[1].Gap != 36 {
		t.Errorf("Expected gap 36, got %d", rows[1].Gap)
	}
}

func TestSummary(t *testing.T) {
	store := NewStore()

	empty := store.Summary(fixedClassifier(28))
	if empty.Count != 0 || empty.HasGap {
		t.Errorf("Expected empty summary, got %+v", empty)
	}

	store.Append(day(2024, time.January, 1), day(2024, time.January, 10))
	store.Append(day(2024, time.February, 15), day(2024, time.February, 20))
	store.Append(day(2024, time.February, 10), day(2024, time.February, 12))

	sum := store.Summary(fixedClassifier(28))
	if sum.Count != 3 {
		t.Errorf("Expected count 3, got %d", sum.Count)
	}
	if sum.TotalDuration != 16 {
		t.Errorf("Expected total duration 16, got %d", sum.TotalDuration)
	}
	if sum.TotalGap != 26 {
		t.Errorf("Expected total gap 26, got %d", sum.TotalGap)
	}
	if !sum.HasGap || sum.LongestGap != 36 {
		t.Errorf("Expected longest gap 36, got %d (has=%v)", sum.LongestGap, sum.HasGap)
	}
	if sum.ExceededGaps != 1 {
		t.Errorf("Expected 1 exceeded gap, got %d", sum.ExceededGaps)
	}
}

func TestSummary_AllNegativeGaps(t *testing.T) {
	store := NewStore()
	store.Append(day(2024, time.January, 1), day(2024, time.January, 20))
	store.Append(day(2024, time.January, 10), day(2024, time.January, 30))
	store.Append(day(2024, time.January, 25), day(2024, time.February, 5))

	sum := store.Summary(nil)
	if sum.LongestGap != -5 {
		t.Errorf("Expected longest gap -5, got %d", sum.LongestGap)
	}
}
