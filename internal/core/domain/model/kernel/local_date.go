package kernel

import (
	"fmt"
	"time"

	"pickup/internal/pkg/errs"
)

// LocalDateLayout is the textual form of a LocalDate, also used on the wire.
const LocalDateLayout = "2006-01-02"

// LocalDate is a calendar day in the service time zone. Orders are keyed by
// it: the daily quota and the expiry deadline are both computed per LocalDate.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

// LocalDateOf returns the calendar day of t in t's own location. Callers pass
// times already converted to the service zone.
func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{year: y, month: m, day: d}
}

// ParseLocalDate parses a YYYY-MM-DD string.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(LocalDateLayout, s)
	if err != nil {
		return LocalDate{}, errs.NewValueIsInvalidErrorWithCause("local date", err)
	}
	return LocalDateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// At combines the date with a wall-clock time in loc.
func (d LocalDate) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, loc)
}

// Midnight returns the start of the day in UTC; used as the DATE column value.
func (d LocalDate) Midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d LocalDate) IsEqual(other LocalDate) bool {
	return d == other
}

func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

// Validate rejects the zero LocalDate.
func (d LocalDate) Validate() error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	return nil
}
