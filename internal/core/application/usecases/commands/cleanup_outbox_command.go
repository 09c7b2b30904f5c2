package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCleanupOutboxCommandIsNotConstructed = errors.New(
	"CleanupOutboxCommand must be created via NewCleanupOutboxCommand constructor",
)

// CleanupOutboxCommand removes messages published before a cut-off.
type CleanupOutboxCommand struct { //nolint:recvcheck //using for validation
	publishedBefore time.Time

	guard guard.ConstructorGuard
}

func NewCleanupOutboxCommand(publishedBefore time.Time) (CleanupOutboxCommand, error) {
	if publishedBefore.IsZero() {
		return CleanupOutboxCommand{}, errs.NewValueIsRequiredError("published before")
	}

	return CleanupOutboxCommand{
		publishedBefore: publishedBefore,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CleanupOutboxCommand) Validate() error {
	return c.guard.Validate(ErrCleanupOutboxCommandIsNotConstructed)
}

func (c CleanupOutboxCommand) PublishedBefore() time.Time {
	return c.publishedBefore
}
