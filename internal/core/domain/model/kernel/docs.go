// Package kernel contains the shared value objects of the pickup domain.
//
// The kernel is the vocabulary every aggregate speaks:
//   - UUID: identifier of orders, users, restaurants and food items
//   - LocalDate: a calendar day in the service time zone (the order date)
//   - TimeOfDay: a wall-clock minute used for restaurant pickup windows
//
// All kernel types are immutable and safe for concurrent use. Their zero
// values are invalid where that matters and report it through Validate.
package kernel
