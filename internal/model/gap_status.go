package model

// GapStatus is the two-way classification of a gap against the threshold
type GapStatus string

const (
	// GapStatusOK means the gap is at or below the threshold
	GapStatusOK GapStatus = "ok"

	// GapStatusExceeded means the gap is strictly above the threshold
	GapStatusExceeded GapStatus = "exceeded"
)

// String returns the string representation of GapStatus
func (gs GapStatus) String() string {
	return string(gs)
}

// IsExceeded returns true if the gap is above the threshold
func (gs GapStatus) IsExceeded() bool {
	return gs == GapStatusExceeded
}

// IsKnown returns true for the two defined statuses; the empty status means unclassified
func (gs GapStatus) IsKnown() bool {
	return gs == GapStatusOK || gs == GapStatusExceeded
}
