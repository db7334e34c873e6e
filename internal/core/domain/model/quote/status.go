package quote

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
)

var (
	// ErrQuoteNotOpen is the cause carried when a booked or expired quote is asked to change.
	ErrQuoteNotOpen = errors.New("quote is not open")

	// ErrQuoteExpired is the cause carried when an open quote is booked after its deadline.
	ErrQuoteExpired = errors.New("quote has expired")
)

// Status is the lifecycle state of a quote.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota

	// Open quotes can still be booked.
	Open

	// Booked quotes were accepted by the customer. Final.
	Booked

	// Expired quotes passed their deadline unbooked. Final.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Booked:  "Booked",
		Expired: "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:    "Open",
		Booked:  "Booked",
		Expired: "Expired",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. from the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Booked || s == Expired
}

// Book transitions Open to Booked.
func (s Status) Book() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%w: %s quote cannot be booked", ErrQuoteNotOpen, s.String()),
		)
	}
	return Booked, nil
}

// Expire transitions Open to Expired.
func (s Status) Expire() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%w: %s quote cannot expire", ErrQuoteNotOpen, s.String()),
		)
	}
	return Expired, nil
}
