package commands

import (
	"errors"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to add a client to the roster.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.ClientID
	name     string
	email    string
	phone    string
	category client.Category
	actor    kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a roster client.
// Field validation is delegated to the client aggregate at handle time;
// the command checks identifiers and the category enum.
func NewCreateClientCommand(
	clientID kernel.ClientID,
	name, email, phone string,
	category client.Category,
	actor kernel.ActorID,
) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setCategory(category),
		clientCommand.setActor(actor),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier the new client will carry.
func (c CreateClientCommand) ClientID() kernel.ClientID {
	return c.clientID
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the client's contact email.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Phone returns the client's contact phone.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// Category returns whether the client is a business or an individual.
func (c CreateClientCommand) Category() client.Category {
	return c.category
}

// Actor returns who registered the client.
func (c CreateClientCommand) Actor() kernel.ActorID {
	return c.actor
}

func (c *CreateClientCommand) setClientID(clientID kernel.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setCategory(category client.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateClientCommand) setActor(actor kernel.ActorID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
