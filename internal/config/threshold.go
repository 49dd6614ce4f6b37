package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/ytget/gapline/internal/model"
)

// Threshold keys and defaults
const (
	KeyMaxGapDays     = "max_gap_days"
	DefaultMaxGapDays = 28
)

// Threshold owns the maximum acceptable gap in days and writes every change
// through to its Store. The stored value is read once, at construction.
type Threshold struct {
	store                   Store
	value                   int
	onInvalidThresholdInput InvalidInputPolicy
}

// ThresholdOption configures a Threshold
type ThresholdOption func(*Threshold)

// WithInvalidInputPolicy replaces the default SubstituteZero policy
func WithInvalidInputPolicy(policy InvalidInputPolicy) ThresholdOption {
	return func(t *Threshold) {
		if policy != nil {
			t.onInvalidThresholdInput = policy
		}
	}
}

// NewThreshold creates the setting and loads its persisted value
func NewThreshold(store Store, opts ...ThresholdOption) *Threshold {
	t := &Threshold{
		store:                   store,
		onInvalidThresholdInput: SubstituteZero,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.value = t.Load()
	return t
}

// Load reads the persisted value, falling back to DefaultMaxGapDays when it
// is absent or not an integer. It does not change the in-memory value.
func (t *Threshold) Load() int {
	raw, ok := t.store.Load(KeyMaxGapDays)
	if !ok {
		return DefaultMaxGapDays
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Stored %s=%q is not a number, using default %d", KeyMaxGapDays, raw, DefaultMaxGapDays)
		return DefaultMaxGapDays
	}
	return value
}

// Get returns the current threshold
func (t *Threshold) Get() int {
	return t.value
}

// Set parses raw and stores it. Unparsable text goes through the
// invalid-input policy instead of being reported as an error.
func (t *Threshold) Set(raw string) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		var accept bool
		value, accept = t.onInvalidThresholdInput(raw, t.value)
		if !accept {
			return
		}
	}
	t.SetValue(value)
}

// SetValue stores an already-parsed threshold
func (t *Threshold) SetValue(value int) {
	t.value = value
	t.store.Save(KeyMaxGapDays, strconv.Itoa(value))
	log.Printf("Gap threshold set to %d days", value)
}

// Classify reports GapStatusOK when gap <= threshold, GapStatusExceeded otherwise
func (t *Threshold) Classify(gap int) model.GapStatus {
	if gap > t.value {
		return model.GapStatusExceeded
	}
	return model.GapStatusOK
}
