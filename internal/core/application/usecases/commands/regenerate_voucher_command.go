package commands

import (
	"errors"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrRegenerateVoucherCommandIsNotConstructed = errors.New(
	"RegenerateVoucherCommand must be created via NewRegenerateVoucherCommand constructor",
)

// RegenerateVoucherCommand represents a request to replace an order's
// voucher token. The old token is revoked in the same transaction, so a
// leaked voucher stops working the moment the new one is issued.
type RegenerateVoucherCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	actor   kernel.ActorID

	guard guard.ConstructorGuard
}

// NewRegenerateVoucherCommand creates a command to replace a voucher token.
func NewRegenerateVoucherCommand(orderID kernel.OrderID, actor kernel.ActorID) (RegenerateVoucherCommand, error) {
	voucherCommand := RegenerateVoucherCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		voucherCommand.setOrderID(orderID),
		voucherCommand.setActor(actor),
	); err != nil {
		return RegenerateVoucherCommand{}, err
	}

	return voucherCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegenerateVoucherCommand) Validate() error {
	return c.guard.Validate(ErrRegenerateVoucherCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose voucher is replaced.
func (c RegenerateVoucherCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Actor returns who requested the replacement.
func (c RegenerateVoucherCommand) Actor() kernel.ActorID {
	return c.actor
}

func (c *RegenerateVoucherCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegenerateVoucherCommand) setActor(actor kernel.ActorID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
