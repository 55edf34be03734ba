package commands

import (
	"errors"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
	"dispatchops/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to book a new transfer order.
// Encapsulates the owning client, agreed price, service date, and route.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewOrderID(), clientID, price, scheduledAt, route, actor,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, tokens)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	clientID    kernel.ClientID
	price       kernel.Money
	scheduledAt time.Time
	route       kernel.Route
	actor       kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book a new order.
// Validates every value object and that the service date is set.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	clientID kernel.ClientID,
	price kernel.Money,
	scheduledAt time.Time,
	route kernel.Route,
	actor kernel.ActorID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setPrice(price),
		orderCommand.setScheduledAt(scheduledAt),
		orderCommand.setRoute(route),
		orderCommand.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ClientID returns the identifier of the booking client.
func (c CreateOrderCommand) ClientID() kernel.ClientID {
	return c.clientID
}

// Price returns the agreed price of the transfer.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// ScheduledAt returns the service date of the transfer.
func (c CreateOrderCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// Route returns the origin and destination of the transfer.
func (c CreateOrderCommand) Route() kernel.Route {
	return c.route
}

// Actor returns who is booking the order.
func (c CreateOrderCommand) Actor() kernel.ActorID {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}

	c.scheduledAt = scheduledAt
	return nil
}

func (c *CreateOrderCommand) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.ActorID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
