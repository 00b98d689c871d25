package host

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/store"
)

// Call is the execution context of a contract operation.
// All reads and writes go through Store, which is scoped to the enclosing transaction.
type Call struct {
	// Caller is the immediate sender: an account for external calls, a contract for forwarded calls
	Caller common.Address
	// Self is the address of the contract being executed
	Self common.Address
	// Value is the wei attached to the call, already credited to Self
	Value *uint256.Int
	// TxHash identifies the enclosing transaction
	TxHash common.Hash
	// Store is the transactional view of the engine state
	Store store.Store

	events *[]*domain.Event
}

// Emit records an event from the executing contract.
// Events are journaled only if the enclosing transaction commits.
func (c *Call) Emit(event *domain.Event) {
	event.Contract = c.Self
	event.TxHash = c.TxHash
	*c.events = append(*c.events, event)
}

// Forward returns the context for a nested call from the executing contract into another contract.
// Nested calls carry no value and share the transaction and its events.
func (c *Call) Forward(to common.Address) *Call {
	return &Call{
		Caller: c.Self,
		Self:   to,
		Value:  new(uint256.Int),
		TxHash: c.TxHash,
		Store:  c.Store,
		events: c.events,
	}
}

// NonPayable rejects calls that carry value
func (c *Call) NonPayable() error {
	if c.Value != nil && !c.Value.IsZero() {
		return domain.ErrNonPayable
	}
	return nil
}

// Pay sends amount wei from the executing contract to an address
func (c *Call) Pay(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if err := transfer(ctx, c.Store, c.Self, to, amount); err != nil {
		return fmt.Errorf("failed to pay %s: %w", to.Hex(), err)
	}
	return nil
}

// Events returns the events emitted so far in the transaction
func (c *Call) Events() []*domain.Event {
	return *c.events
}
