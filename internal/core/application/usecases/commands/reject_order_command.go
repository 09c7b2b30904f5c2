package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand reports that the restaurant refused a paid order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	failureMessages []string

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(trackingID kernel.TrackingID, failureMessages []string) (RejectOrderCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		trackingID:      trackingID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c RejectOrderCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
