package config

import "log"

// InvalidInputPolicy decides what an unparsable threshold entry turns into.
// It gets the raw text and the current value and returns the value to store;
// accept=false rejects the input and leaves the setting untouched.
type InvalidInputPolicy func(raw string, current int) (value int, accept bool)

// SubstituteZero treats unparsable input as 0. This is the default.
func SubstituteZero(raw string, current int) (int, bool) {
	log.Printf("Threshold input %q is not a number, using 0", raw)
	return 0, true
}

// KeepCurrent ignores unparsable input.
func KeepCurrent(raw string, current int) (int, bool) {
	log.Printf("Threshold input %q is not a number, keeping %d", raw, current)
	return current, false
}
