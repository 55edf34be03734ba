package order

import (
	"errors"
	"fmt"

	"dispatchops/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for disallowed status changes.
// Use errors.Is against it; the concrete *InvalidTransitionError carries
// the current and requested statuses for diagnostics.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that is not present in the
// transition table. It keeps both endpoints so operators can see exactly
// which step was attempted.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct operational workflow.
//
// State transitions:
//
//	NEW ──> CONFIRMED ──> ASSIGNED ──> IN_PROGRESS ──> PICKED_UP ──> COMPLETED
//	 │          │            │  │           │
//	 │          │            │  └─> NO_SHOW │
//	 └──────────┴────────────┴──────────────┴─> CANCELLED
//
// COMPLETED, NO_SHOW, and CANCELLED are terminal: no outbound transitions
// are defined for them. Every change must be a single step from the table;
// skipping ahead (e.g. NEW directly to ASSIGNED) is rejected even though it
// is "more progressed".
//
// Status is a value object that validates state transitions and provides
// the console's wire names for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first booked.
	New

	// Confirmed indicates the booking was verified by a dispatcher.
	Confirmed

	// Assigned indicates an executor has been attached to the order.
	Assigned

	// InProgress indicates the executor is en route to the pickup point.
	InProgress

	// PickedUp indicates the passenger is on board.
	PickedUp

	// Completed indicates the transfer finished successfully. Terminal.
	Completed

	// NoShow indicates the passenger never appeared at the pickup point.
	// Terminal.
	NoShow

	// Cancelled indicates the order was called off. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for all Status values, including
// Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Confirmed:  "CONFIRMED",
		Assigned:   "ASSIGNED",
		InProgress: "IN_PROGRESS",
		PickedUp:   "PICKED_UP",
		Completed:  "COMPLETED",
		NoShow:     "NO_SHOW",
		Cancelled:  "CANCELLED",
	}
}

// getTransitionTable returns the allowed destinations for every valid
// status. Terminal states appear with empty rows so that rejection is a
// membership check on an explicit row, never an absent-key accident.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		New:        {Confirmed, Cancelled},
		Confirmed:  {Assigned, Cancelled},
		Assigned:   {InProgress, NoShow, Cancelled},
		InProgress: {PickedUp, Cancelled},
		PickedUp:   {Completed},
		Completed:  {},
		NoShow:     {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its wire name ("NEW",
// "IN_PROGRESS"). Returns an error for unrecognized names and for
// "UNKNOWN", which is never a valid stored value.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the status set.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("NEW", "PICKED_UP").
// Invalid values render as "UNKNOWN". Implements fmt.Stringer and is safe
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outbound transitions.
func (s Status) IsTerminal() bool {
	destinations, ok := getTransitionTable()[s]
	return ok && len(destinations) == 0
}

// IsActive reports whether an order in this status still occupies the
// dispatch pipeline. Active statuses are NEW, CONFIRMED, ASSIGNED, and
// IN_PROGRESS; this is the set the dashboard counts as "active orders".
func (s Status) IsActive() bool {
	switch s {
	case New, Confirmed, Assigned, InProgress:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether target is an allowed destination from the
// current status. The check is strict membership in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the state change to target.
//
// Returns:
//   - (target, nil) when the transition is present in the table
//   - (Unknown, *InvalidTransitionError) when it is not
//   - (Unknown, validation error) when either endpoint is not a valid status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
