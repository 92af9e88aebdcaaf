package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned for Restaurant values not built by NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a pickup location with a daily pickup window.
//
// The window never spans midnight: open must be strictly before close.
type Restaurant struct {
	id        kernel.UUID
	name      string
	openTime  kernel.TimeOfDay
	closeTime kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewRestaurant validates and builds a Restaurant.
//
// Example:
//
//	open, _ := kernel.ParseTimeOfDay("09:00")
//	closing, _ := kernel.ParseTimeOfDay("22:00")
//	r, err := catalog.NewRestaurant(kernel.NewUUID(), "Warung Sate", open, closing)
func NewRestaurant(id kernel.UUID, name string, openTime, closeTime kernel.TimeOfDay) (*Restaurant, error) {
	r := &Restaurant{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setWindow(openTime, closeTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) OpenTime() kernel.TimeOfDay {
	return r.openTime
}

func (r *Restaurant) CloseTime() kernel.TimeOfDay {
	return r.closeTime
}

// IsOpenAt reports whether at falls inside [open, close) of its own calendar day.
// at must already be expressed in the service time zone.
func (r *Restaurant) IsOpenAt(at time.Time) bool {
	day := kernel.LocalDateOf(at)
	opensAt := day.At(r.openTime, at.Location())
	closesAt := day.At(r.closeTime, at.Location())
	return !at.Before(opensAt) && at.Before(closesAt)
}

// ExpiryDeadline is the moment an unresolved order placed on date expires:
// the close time of that same day.
func (r *Restaurant) ExpiryDeadline(date kernel.LocalDate, loc *time.Location) time.Time {
	return date.At(r.closeTime, loc)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setWindow(openTime, closeTime kernel.TimeOfDay) error {
	if !openTime.Before(closeTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup window",
			fmt.Errorf("open time %s is not before close time %s", openTime, closeTime),
		)
	}
	r.openTime = openTime
	r.closeTime = closeTime
	return nil
}
