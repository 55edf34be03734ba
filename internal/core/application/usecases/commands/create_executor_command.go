package commands

import (
	"errors"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrCreateExecutorCommandIsNotConstructed = errors.New(
	"CreateExecutorCommand must be created via NewCreateExecutorCommand constructor",
)

// CreateExecutorCommand represents a request to add a driver to the roster.
// New executors always start ACTIVE.
type CreateExecutorCommand struct { //nolint:recvcheck //using for validation
	executorID kernel.ExecutorID
	name       string
	phone      string
	vehicle    string
	actor      kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCreateExecutorCommand creates a command to register a roster executor.
func NewCreateExecutorCommand(
	executorID kernel.ExecutorID,
	name, phone, vehicle string,
	actor kernel.ActorID,
) (CreateExecutorCommand, error) {
	executorCommand := CreateExecutorCommand{
		name:    name,
		phone:   phone,
		vehicle: vehicle,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		executorCommand.setExecutorID(executorID),
		executorCommand.setActor(actor),
	); err != nil {
		return CreateExecutorCommand{}, err
	}

	return executorCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateExecutorCommand) Validate() error {
	return c.guard.Validate(ErrCreateExecutorCommandIsNotConstructed)
}

// ExecutorID returns the identifier the new executor will carry.
func (c CreateExecutorCommand) ExecutorID() kernel.ExecutorID {
	return c.executorID
}

// Name returns the executor's display name.
func (c CreateExecutorCommand) Name() string {
	return c.name
}

// Phone returns the executor's contact phone.
func (c CreateExecutorCommand) Phone() string {
	return c.phone
}

// Vehicle returns the vehicle description shown on the board.
func (c CreateExecutorCommand) Vehicle() string {
	return c.vehicle
}

// Actor returns who registered the executor.
func (c CreateExecutorCommand) Actor() kernel.ActorID {
	return c.actor
}

func (c *CreateExecutorCommand) setExecutorID(executorID kernel.ExecutorID) error {
	if err := executorID.Validate(); err != nil {
		return err
	}

	c.executorID = executorID
	return nil
}

func (c *CreateExecutorCommand) setActor(actor kernel.ActorID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
