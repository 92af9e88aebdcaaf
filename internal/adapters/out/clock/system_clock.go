// Package clock provides the wall clock of the service time zone.
package clock

import (
	"time"
)

// SystemClock reads time.Now in a fixed location. Order dates and pickup
// windows are evaluated in that location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return SystemClock{loc: loc}
}

// LoadSystemClock resolves an IANA zone name such as "Asia/Jakarta".
func LoadSystemClock(name string) (SystemClock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return SystemClock{}, err
	}
	return NewSystemClock(loc), nil
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c SystemClock) Location() *time.Location {
	return c.loc
}
