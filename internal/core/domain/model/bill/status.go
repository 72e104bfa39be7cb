package bill

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
)

// Status represents the payment status of a bill. It is never set directly:
// DeriveStatus recomputes it from the paid amount after every payment.
type Status int

const (
	// StatusUnknown represents an invalid or uninitialized status
	StatusUnknown Status = iota

	// Unpaid means no payment has been recorded yet
	Unpaid

	// Partial means some, but not all, of the amount has been paid
	Partial

	// Paid means the bill is settled in full
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Unpaid:        "Unpaid",
		Partial:       "Partial",
		Paid:          "Paid",
	}
}

// StatusFromString converts a string into a Status.
// Returns an error for unknown names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != StatusUnknown {
			return status, nil
		}
	}

	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid bill status", name))
}

// Validate checks if the status holds a valid value.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid bill status", int(s)))
	}

	return nil
}

// String returns the string representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}

	return "Unknown"
}

// DeriveStatus computes the bill status from the amounts. Zero paid is
// Unpaid, anything short of the total is Partial, the full amount is Paid.
func DeriveStatus(amount, amountPaid float64) Status {
	switch {
	case amountPaid <= 0:
		return Unpaid
	case amountPaid < amount:
		return Partial
	default:
		return Paid
	}
}
