package ports

import "time"

// Clock supplies the current time in the service time zone. Order dates and
// restaurant windows are evaluated in that zone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}
