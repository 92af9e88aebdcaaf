package order

import (
	"fmt"

	"pickup/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Active ──┬──> Succeeded
//	         └──> Failed
//
// Succeeded and Failed are terminal. Only history records carry them.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Active is the status of every order that is still awaiting pickup.
	Active

	// Succeeded means the customer picked the order up.
	Succeeded

	// Failed means the order was not picked up, either on request or because
	// the restaurant closed. Its stock is returned to inventory.
	Failed
)

// Persisted and wire representations.
const (
	activeCode    = "active"
	succeededCode = "success"
	failedCode    = "failed"
)

func statusCodes() map[Status]string {
	return map[Status]string{
		Active:    activeCode,
		Succeeded: succeededCode,
		Failed:    failedCode,
	}
}

// ParseStatus maps a persisted or wire code back to a Status.
//
// Example:
//
//	s, err := order.ParseStatus("failed") // order.Failed
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", code),
	)
}

// ParseTerminalStatus is ParseStatus restricted to Succeeded and Failed.
func ParseTerminalStatus(code string) (Status, error) {
	s, err := ParseStatus(code)
	if err != nil {
		return Unknown, err
	}
	if err := s.ValidateTerminal(); err != nil {
		return Unknown, err
	}
	return s, nil
}

func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateTerminal accepts only the statuses an order can be resolved to.
func (s Status) ValidateTerminal() error {
	if s != Succeeded && s != Failed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a terminal status", s),
		)
	}
	return nil
}

// IsTerminal reports whether s is Succeeded or Failed.
func (s Status) IsTerminal() bool {
	return s == Succeeded || s == Failed
}

// String returns the persisted code of the status, or "unknown".
func (s Status) String() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "unknown"
}
