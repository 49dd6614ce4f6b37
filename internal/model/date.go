package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout renders a date as day-month-year, e.g. 05-03-2024.
const DisplayLayout = "02-01-2006"

// isoLayout is used for String and debugging output.
const isoLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate is returned when text matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// InputLayouts lists the textual forms accepted by ParseDate, tried in order.
// Month-first layouts come before year-first ones.
var InputLayouts = []string{
	"01-02-2006", "1-02-2006", "01-2-2006", "1-2-2006",
	"01-02-06", "1-02-06", "01-2-06", "1-2-06",
	"2006-01-02", "2006-1-02", "2006-01-2", "2006-1-2",
	"01/02/2006", "1/02/2006", "01/2/2006", "1/2/2006",
	"01/02/06", "1/02/06", "01/2/06", "1/2/06",
	"2006/01/02", "2006/1/02", "2006/01/2", "2006/1/2",
}

// Date is a calendar day without time of day or zone.
// The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate builds a date from its parts. Out-of-range parts are normalized
// the same way time.Date does it (e.g. January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// IsZero reports whether the date is missing.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

// DaysUntil returns other minus d in whole days. Negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

// Equal reports whether both values denote the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Format returns the date as DD-MM-YYYY, or an empty string for a zero date.
func (d Date) Format() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DisplayLayout)
}

// String returns the ISO form, which reads better in logs and test failures.
func (d Date) String() string {
	if d.IsZero() {
		return "<none>"
	}
	return d.t.Format(isoLayout)
}

// ParseDate parses user input against InputLayouts.
func ParseDate(input string) (Date, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return Date{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	for _, layout := range InputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
}

// ParseDisplayDate parses the DD-MM-YYYY form produced by Format.
func ParseDisplayDate(input string) (Date, error) {
	t, err := time.Parse(DisplayLayout, strings.TrimSpace(input))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return DateOf(t), nil
}
