package kernel

import (
	"fmt"
	"time"

	"pickup/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, stored as the number
// of minutes since midnight in [0, 1440).
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// TimeOfDayFromMinutes restores a value persisted as minutes since midnight.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes}, nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// TimeOfDayOf truncates t to its wall-clock minute.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
