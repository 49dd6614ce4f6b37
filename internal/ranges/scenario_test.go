package ranges_test

import (
	"testing"
	"time"

	"github.com/ytget/gapline/internal/config"
	"github.com/ytget/gapline/internal/model"
	"github.com/ytget/gapline/internal/ranges"
)

func TestScenario_ThresholdReclassifiesGap(t *testing.T) {
	threshold := config.NewThreshold(config.NewMemoryStore(nil))
	store := ranges.NewStore()

	if threshold.Get() != 28 {
		t.Fatalf("Expected default threshold 28, got %d", threshold.Get())
	}

	a, _ := store.Append(model.NewDate(2024, time.January, 1), model.NewDate(2024, time.January, 10))
	if got := store.DurationOf(a); got != 9 {
		t.Errorf("Expected duration of A to be 9, got %d", got)
	}
	if _, ok := store.GapBefore(0); ok {
		t.Error("Expected no gap before A")
	}

	b, _ := store.Append(model.NewDate(2024, time.February, 15), model.NewDate(2024, time.February, 20))
	if got := store.DurationOf(b); got != 5 {
		t.Errorf("Expected duration of B to be 5, got %d", got)
	}
	gap, ok := store.GapBefore(1)
	if !ok || gap != 36 {
		t.Fatalf("Expected gap (36, true), got (%d, %v)", gap, ok)
	}
	if got := threshold.Classify(gap); got != model.GapStatusExceeded {
		t.Errorf("Expected gap 36 to exceed threshold 28, got %s", got)
	}

	before := store.All()
	threshold.Set("40")

	rows := store.Rows(threshold)
	if rows[1].Gap != 36 || rows[1].Status != model.GapStatusOK {
		t.Errorf("Expected gap 36 ok after raising threshold, got gap=%d status=%s", rows[1].Gap, rows[1].Status)
	}
	after := store.All()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Changing the threshold altered range %d: %s -> %s", i, before[i], after[i])
		}
	}

	store.RemoveAt(0)
	if store.Len() != 1 || store.At(0).ID != b.ID {
		t.Fatalf("Expected only B to remain, got %v", store.All())
	}
	if _, ok := store.GapBefore(0); ok {
		t.Error("Expected B to have no gap once A is removed")
	}
}
