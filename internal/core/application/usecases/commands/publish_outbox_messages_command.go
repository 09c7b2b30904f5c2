package commands

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPublishOutboxMessagesCommandIsNotConstructed = errors.New(
	"PublishOutboxMessagesCommand must be created via NewPublishOutboxMessagesCommand constructor",
)

// PublishOutboxMessagesCommand asks the relay to publish one batch of pending messages.
type PublishOutboxMessagesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxMessagesCommand(batchSize int) (PublishOutboxMessagesCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxMessagesCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size is invalid",
			fmt.Errorf("%d is not greater than 0", batchSize),
		)
	}

	return PublishOutboxMessagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxMessagesCommandIsNotConstructed)
}

func (c PublishOutboxMessagesCommand) BatchSize() int {
	return c.batchSize
}
