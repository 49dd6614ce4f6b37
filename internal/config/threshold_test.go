package config

import (
	"testing"

	"github.com/ytget/gapline/internal/model"
)

func TestThreshold_LoadDefault(t *testing.T) {
	store := NewMemoryStore(nil)
	threshold := NewThreshold(store)

	if got := threshold.Get(); got != 28 {
		t.Errorf("Expected default threshold 28, got %d", got)
	}
	if store.Saves() != 0 {
		t.Errorf("Loading should not write to the store, got %d saves", store.Saves())
	}
}

func TestThreshold_LoadStored(t *testing.T) {
	tests := []struct {
		stored   string
		expected int
	}{
		{"14", 14},
		{" 7 ", 7},
		{"0", 0},
		{"-3", -3},
		{"abc", DefaultMaxGapDays},
		{"12.5", DefaultMaxGapDays},
		{"", DefaultMaxGapDays},
	}

	for _, test := range tests {
		store := NewMemoryStore(map[string]string{KeyMaxGapDays: test.stored})
		threshold := NewThreshold(store)
		if got := threshold.Get(); got != test.expected {
			t.Errorf("Stored %q: expected threshold %d, got %d", test.stored, test.expected, got)
		}
	}
}

func TestThreshold_Set(t *testing.T) {
	store := NewMemoryStore(nil)
	threshold := NewThreshold(store)

	threshold.Set("40")

	if got := threshold.Get(); got != 40 {
		t.Errorf("Expected threshold 40, got %d", got)
	}
	if stored, _ := store.Load(KeyMaxGapDays); stored != "40" {
		t.Errorf("Expected stored value '40', got '%s'", stored)
	}
	if store.Saves() != 1 {
		t.Errorf("Expected exactly one save, got %d", store.Saves())
	}
}

func TestThreshold_SetInvalidSubstitutesZero(t *testing.T) {
	inputs := []string{"", "  ", "abc", "4O", "1e3"}

	for _, input := range inputs {
		store := NewMemoryStore(nil)
		threshold := NewThreshold(store)

		threshold.Set(input)

		if got := threshold.Get(); got != 0 {
			t.Errorf("Set(%q): expected 0, got %d", input, got)
		}
		if stored, _ := store.Load(KeyMaxGapDays); stored != "0" {
			t.Errorf("Set(%q): expected stored '0', got '%s'", input, stored)
		}
	}
}

func TestThreshold_SetInvalidKeepCurrent(t *testing.T) {
	store := NewMemoryStore(map[string]string{KeyMaxGapDays: "21"})
	threshold := NewThreshold(store, WithInvalidInputPolicy(KeepCurrent))

	threshold.Set("not a number")

	if got := threshold.Get(); got != 21 {
		t.Errorf("Expected threshold to stay 21, got %d", got)
	}
	if store.Saves() != 0 {
		t.Errorf("Rejected input should not be saved, got %d saves", store.Saves())
	}

	threshold.Set("35")
	if got := threshold.Get(); got != 35 {
		t.Errorf("Expected valid input to be accepted, got %d", got)
	}
}

func TestThreshold_NilPolicyKeepsDefault(t *testing.T) {
	threshold := NewThreshold(NewMemoryStore(nil), WithInvalidInputPolicy(nil))

	threshold.Set("x")
	if got := threshold.Get(); got != 0 {
		t.Errorf("Expected default policy to substitute 0, got %d", got)
	}
}

func TestThreshold_LoadDoesNotChangeCurrent(t *testing.T) {
	store := NewMemoryStore(nil)
	threshold := NewThreshold(store)
	threshold.SetValue(10)

	// Simulate another process writing the key mid-session
	store.Save(KeyMaxGapDays, "99")

	if got := threshold.Load(); got != 99 {
		t.Errorf("Expected Load to read 99, got %d", got)
	}
	if got := threshold.Get(); got != 10 {
		t.Errorf("Expected in-memory value to stay 10, got %d", got)
	}
}

func TestThreshold_Classify(t *testing.T) {
	threshold := NewThreshold(NewMemoryStore(nil))

	tests := []struct {
		gap      int
		expected model.GapStatus
	}{
		{-5, model.GapStatusOK},
		{0, model.GapStatusOK},
		{27, model.GapStatusOK},
		{28, model.GapStatusOK},
		{29, model.GapStatusExceeded},
		{36, model.GapStatusExceeded},
	}

	for _, test := range tests {
		if got := threshold.Classify(test.gap); got != test.expected {
			t.Errorf("Classify(%d) with threshold 28 = %s, expected %s", test.gap, got, test.expected)
		}
	}
}

func TestThreshold_ClassifyFollowsSet(t *testing.T) {
	threshold := NewThreshold(NewMemoryStore(nil))

	if got := threshold.Classify(36); got != model.GapStatusExceeded {
		t.Fatalf("Expected 36 to exceed the default threshold, got %s", got)
	}

	threshold.Set("40")
	if got := threshold.Classify(36); got != model.GapStatusOK {
		t.Errorf("Expected 36 to be ok with threshold 40, got %s", got)
	}

	threshold.Set("")
	if got := threshold.Classify(1); got != model.GapStatusExceeded {
		t.Errorf("Expected 1 to exceed threshold 0, got %s", got)
	}
}
