package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order in the payment and restaurant
// approval saga.
//
// State transitions:
//
//	           ┌──> Cancelled (payment cancelled before completion)
//	Pending ───┤
//	           └──> Paid ──┬──> Approved
//	                       │
//	                       └──> Cancelling ──> Cancelled
//	                       (restaurant rejected, refund pending)
//
// Approved and Cancelled are terminal.
type Status int

const (
	// Unknown is the zero value. An order that has not been initialized yet
	// carries this status.
	Unknown Status = iota

	// Pending is assigned on initialization; the order waits for payment.
	Pending

	// Paid means payment completed; the order waits for restaurant approval.
	Paid

	// Approved means the restaurant accepted the order.
	Approved

	// Cancelling means the restaurant rejected a paid order and the payment
	// is being compensated.
	Cancelling

	// Cancelled is the terminal failure state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Paid:       "PAID",
		Approved:   "APPROVED",
		Cancelling: "CANCELLING",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown only marks an uninitialized order
	return map[Status]string{
		Pending:    "PENDING",
		Paid:       "PAID",
		Approved:   "APPROVED",
		Cancelling: "CANCELLING",
		Cancelled:  "CANCELLED",
	}
}

// Validate rejects Unknown and any value outside the enumeration. It is used
// when restoring orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used on the wire, e.g. "PENDING".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Cancelled
}

// Pay transitions Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, "pay")
	}
	return Paid, nil
}

// Approve transitions Paid to Approved.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return Unknown, transitionError(s, "approve")
	}
	return Approved, nil
}

// InitCancel transitions Paid to Cancelling.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return Unknown, transitionError(s, "initiate cancel")
	}
	return Cancelling, nil
}

// Cancel transitions Pending or Cancelling to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Cancelling {
		return Unknown, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, operation string) error {
	return errs.NewDomainRuleViolationErrorWithCause(
		"order is not in a valid state for "+operation,
		fmt.Errorf("%s is not a valid status to %s", s, operation),
	)
}
