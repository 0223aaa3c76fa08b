package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRunDispatchCommandIsNotConstructed = errors.New(
	"RunDispatchCommand must be created via NewRunDispatchCommand constructor",
)

// RunDispatchCommand triggers one dispatch run over all pending orders.
// This command represents the business operation of matching the pending
// order backlog with the partner pool, recording every attempt in the
// assignment ledger.
//
// Example:
//
//	cmd := NewRunDispatchCommand()
//	handler := NewRunDispatchCommandHandler(uowFactory, recorder)
//	entries, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Dispatch run aborted: %v", err)
//	}
//	log.Printf("Dispatch run produced %d ledger entries", len(entries))
type RunDispatchCommand struct {
	guard guard.ConstructorGuard
}

// NewRunDispatchCommand creates a new command to trigger a dispatch run.
// This is a parameterless command that initiates the order-partner matching process.
func NewRunDispatchCommand() RunDispatchCommand {
	return RunDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunDispatchCommandIsNotConstructed if validation fails.
func (c *RunDispatchCommand) Validate() error {
	return c.guard.Validate(ErrRunDispatchCommandIsNotConstructed)
}
