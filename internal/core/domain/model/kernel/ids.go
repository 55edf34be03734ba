package kernel

import (
	"fmt"
	"strings"

	"dispatchops/internal/pkg/errs"

	"github.com/google/uuid"
)

// Identifier prefixes shared with the dispatch console and exports.
// Identifiers look like "ORD-7F3A21C4", "CL-101", "EX-001".
const (
	orderIDPrefix    = "ORD-"
	clientIDPrefix   = "CL-"
	executorIDPrefix = "EX-"
)

// newPrefixedValue produces a fresh identifier value from UUID entropy.
// The uppercase 8-hex-digit suffix keeps identifiers short enough for
// operators to read aloud while staying unique for the fleet sizes at hand.
func newPrefixedValue(prefix string) string {
	raw := uuid.New()
	return prefix + strings.ToUpper(raw.String()[:8])
}

// validatePrefixedValue checks that an identifier carries the expected
// prefix and a non-empty suffix.
func validatePrefixedValue(paramName, prefix, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !strings.HasPrefix(value, prefix) || len(value) == len(prefix) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%q must start with %q followed by a non-empty suffix", value, prefix))
	}
	return nil
}

// OrderID is the value object identifying an order. The zero value is
// invalid; construct through NewOrderID or OrderIDFromString.
//
// Example:
//
//	id := kernel.NewOrderID()          // "ORD-7F3A21C4"
//	id, err := kernel.OrderIDFromString("ORD-7701")
type OrderID struct {
	value string
}

// NewOrderID generates a new unique order identifier.
func NewOrderID() OrderID {
	return OrderID{value: newPrefixedValue(orderIDPrefix)}
}

// OrderIDFromString parses an order identifier from its string form.
// Returns an error unless the value has the "ORD-" prefix and a suffix.
func OrderIDFromString(s string) (OrderID, error) {
	if err := validatePrefixedValue("orderID", orderIDPrefix, s); err != nil {
		return OrderID{}, err
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its wire form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate reports whether the identifier was properly constructed.
func (id OrderID) Validate() error {
	return validatePrefixedValue("orderID", orderIDPrefix, id.value)
}

// ClientID is the value object identifying a client. The zero value is
// invalid; construct through NewClientID or ClientIDFromString.
type ClientID struct {
	value string
}

// NewClientID generates a new unique client identifier.
func NewClientID() ClientID {
	return ClientID{value: newPrefixedValue(clientIDPrefix)}
}

// ClientIDFromString parses a client identifier from its string form.
func ClientIDFromString(s string) (ClientID, error) {
	if err := validatePrefixedValue("clientID", clientIDPrefix, s); err != nil {
		return ClientID{}, err
	}
	return ClientID{value: s}, nil
}

// String returns the identifier in its wire form.
func (id ClientID) String() string {
	return id.value
}

// IsEqual compares two client identifiers by value.
func (id ClientID) IsEqual(other ClientID) bool {
	return id.value == other.value
}

// Validate reports whether the identifier was properly constructed.
func (id ClientID) Validate() error {
	return validatePrefixedValue("clientID", clientIDPrefix, id.value)
}

// ExecutorID is the value object identifying an executor (driver/vehicle
// resource). The zero value is invalid; construct through NewExecutorID or
// ExecutorIDFromString.
type ExecutorID struct {
	value string
}

// NewExecutorID generates a new unique executor identifier.
func NewExecutorID() ExecutorID {
	return ExecutorID{value: newPrefixedValue(executorIDPrefix)}
}

// ExecutorIDFromString parses an executor identifier from its string form.
func ExecutorIDFromString(s string) (ExecutorID, error) {
	if err := validatePrefixedValue("executorID", executorIDPrefix, s); err != nil {
		return ExecutorID{}, err
	}
	return ExecutorID{value: s}, nil
}

// String returns the identifier in its wire form.
func (id ExecutorID) String() string {
	return id.value
}

// IsEqual compares two executor identifiers by value.
func (id ExecutorID) IsEqual(other ExecutorID) bool {
	return id.value == other.value
}

// Validate reports whether the identifier was properly constructed.
func (id ExecutorID) Validate() error {
	return validatePrefixedValue("executorID", executorIDPrefix, id.value)
}

// ActorID identifies the user performing a mutation for audit purposes.
// Actors are not an aggregate of this system: staff accounts, executors
// acting through a driver app, and partner clients all appear here, so any
// non-empty value is accepted.
type ActorID struct {
	value string
}

// ActorIDFromString parses an actor identifier. Only emptiness is rejected.
func ActorIDFromString(s string) (ActorID, error) {
	if s == "" {
		return ActorID{}, errs.NewValueIsRequiredError("actorID")
	}
	return ActorID{value: s}, nil
}

// String returns the identifier in its wire form.
func (id ActorID) String() string {
	return id.value
}

// IsEqual compares two actor identifiers by value.
func (id ActorID) IsEqual(other ActorID) bool {
	return id.value == other.value
}

// Validate reports whether the identifier was properly constructed.
func (id ActorID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("actorID")
	}
	return nil
}
