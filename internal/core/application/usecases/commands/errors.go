package commands

import "errors"

// Rejections of a placement. The caller made a valid request the business
// rules do not allow; no state is left behind.
var (
	ErrRestaurantClosed = errors.New("restaurant is closed")
	ErrItemNotOffered   = errors.New("food item is not offered by the restaurant")
	ErrOutOfStock       = errors.New("food item is out of stock")
	ErrQuotaExceeded    = errors.New("daily order quota exceeded")
)

// IsRejection reports whether err is one of the placement rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrRestaurantClosed) ||
		errors.Is(err, ErrItemNotOffered) ||
		errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrQuotaExceeded)
}
