package commands

import (
	"errors"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrAssignExecutorCommandIsNotConstructed = errors.New(
	"AssignExecutorCommand must be created via NewAssignExecutorCommand constructor",
)

// AssignExecutorCommand represents a request to put a driver on an order.
// Assignment only references the executor; it does not transition the
// order's status, which stays with ChangeOrderStatusCommand.
type AssignExecutorCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	executorID kernel.ExecutorID
	actor      kernel.ActorID

	guard guard.ConstructorGuard
}

// NewAssignExecutorCommand creates a command to assign an executor to an order.
func NewAssignExecutorCommand(
	orderID kernel.OrderID,
	executorID kernel.ExecutorID,
	actor kernel.ActorID,
) (AssignExecutorCommand, error) {
	assignCommand := AssignExecutorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setExecutorID(executorID),
		assignCommand.setActor(actor),
	); err != nil {
		return AssignExecutorCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignExecutorCommand) Validate() error {
	return c.guard.Validate(ErrAssignExecutorCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the assignment.
func (c AssignExecutorCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ExecutorID returns the identifier of the executor being assigned.
func (c AssignExecutorCommand) ExecutorID() kernel.ExecutorID {
	return c.executorID
}

// Actor returns who made the assignment.
func (c AssignExecutorCommand) Actor() kernel.ActorID {
	return c.actor
}

func (c *AssignExecutorCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignExecutorCommand) setExecutorID(executorID kernel.ExecutorID) error {
	if err := executorID.Validate(); err != nil {
		return err
	}

	c.executorID = executorID
	return nil
}

func (c *AssignExecutorCommand) setActor(actor kernel.ActorID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
