package executor

import (
	"errors"
	"fmt"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
)

// Domain errors for executor operations.
var (
	// ErrExecutorIsNotConstructed is returned when using an improperly
	// initialized Executor.
	ErrExecutorIsNotConstructed = errors.New("Executor must be created via NewExecutor or RestoreExecutor constructor")
)

// Availability is the executor's duty state. Unlike order statuses these
// states form no workflow: dispatchers flip them freely as drivers come on
// and off shift.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined state.
	AvailabilityUnknown Availability = iota

	// Active means the executor is on shift and can take orders.
	Active

	// Busy means the executor is currently serving an order.
	Busy

	// Offline means the executor is off shift.
	Offline
)

// getAvailabilityStrings returns the wire names for valid states.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Active:  "ACTIVE",
		Busy:    "BUSY",
		Offline: "OFFLINE",
	}
}

// AvailabilityFromString parses an availability state from its wire name.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, name := range getAvailabilityStrings() {
		if name == s {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid availability state", s))
}

// Validate checks if the Availability value is valid.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability state", a))
	}
	return nil
}

// String returns the wire name of the state ("ACTIVE", "BUSY", "OFFLINE").
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// Executor represents a driver/vehicle resource assignable to orders. It is
// an aggregate root keyed by ExecutorID.
type Executor struct {
	id           kernel.ExecutorID
	name         string
	phone        string
	vehicle      string
	availability Availability

	isConstructed bool
}

// NewExecutor registers an executor in Active state.
func NewExecutor(id kernel.ExecutorID, name, phone, vehicle string) (*Executor, error) {
	e := &Executor{
		availability:  Active,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setPhone(phone),
		e.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreExecutor reconstructs an executor from persistent storage with
// its stored availability state.
func RestoreExecutor(id kernel.ExecutorID, name, phone, vehicle string, availability Availability) (*Executor, error) {
	e, err := NewExecutor(id, name, phone, vehicle)
	if err != nil {
		return nil, err
	}

	if err := availability.Validate(); err != nil {
		return nil, err
	}

	e.availability = availability
	return e, nil
}

// Validate ensures the Executor instance was properly constructed.
func (e *Executor) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExecutorIsNotConstructed
	}
	return nil
}

// IsEqual compares two executors by their unique identifiers.
func (e *Executor) IsEqual(other *Executor) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the executor's unique identifier.
func (e *Executor) ID() kernel.ExecutorID {
	return e.id
}

// Name returns the driver's name.
func (e *Executor) Name() string {
	return e.name
}

// Phone returns the driver's contact phone number.
func (e *Executor) Phone() string {
	return e.phone
}

// Vehicle returns the vehicle description ("Mercedes V-Class (Black)").
func (e *Executor) Vehicle() string {
	return e.vehicle
}

// Availability returns the current duty state.
func (e *Executor) Availability() Availability {
	return e.availability
}

// SetAvailability moves the executor to the given duty state.
func (e *Executor) SetAvailability(target Availability) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	e.availability = target
	return nil
}

func (e *Executor) setID(id kernel.ExecutorID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Executor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Executor) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	e.phone = phone
	return nil
}

func (e *Executor) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	e.vehicle = vehicle
	return nil
}
