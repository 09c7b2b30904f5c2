package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand reports that the restaurant accepted a paid order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(trackingID kernel.TrackingID) (ApproveOrderCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}
