package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/gapline/internal/config"
	"github.com/ytget/gapline/internal/model"
	"github.com/ytget/gapline/internal/ranges"
)

func TestTimeline_Empty(t *testing.T) {
	test.NewApp()
	timeline := NewTimeline(NewLocalization())

	lines := timeline.Lines()
	if len(lines) != 1 || lines[0] != "No dates yet" {
		t.Errorf("Expected empty-state line, got %q", lines)
	}
}

func TestTimeline_SetRows(t *testing.T) {
	test.NewApp()
	store := ranges.NewStore()
	store.Append(model.NewDate(2024, time.January, 1), model.NewDate(2024, time.January, 10))
	store.Append(model.NewDate(2024, time.February, 15), model.NewDate(2024, time.February, 20))
	threshold := config.NewThreshold(config.NewMemoryStore(nil))

	timeline := NewTimeline(NewLocalization())
	timeline.SetRows(store.Rows(threshold))

	expected := []string{
		IconCalendar + " Start Date: 01-01-2024",
		IconDuration + " 9 days",
		IconCalendar + " End Date: 10-01-2024",
		IconGap + " 36 days",
		IconCalendar + " Start Date: 15-02-2024",
		IconDuration + " 5 days",
		IconCalendar + " End Date: 20-02-2024",
	}

	lines := timeline.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}

	if len(timeline.box.Objects) != len(expected) {
		t.Errorf("Expected %d canvas objects, got %d", len(expected), len(timeline.box.Objects))
	}

	timeline.SetRows(nil)
	if len(timeline.Lines()) != 1 {
		t.Errorf("Expected timeline to reset to the empty state, got %q", timeline.Lines())
	}
}
