package order

import (
	"errors"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrVoucherAlreadyAttached is returned when attaching a voucher to an
	// order that already owns one. An order has at most one voucher.
	ErrVoucherAlreadyAttached = errors.New("order already has a voucher")
)

// Order represents a transport booking tracked through its lifecycle. It is
// the aggregate root that owns the booking's status history and voucher.
//
// Order maintains these invariants:
//   - status is always a member of the status set
//   - statusHistory is append-only; once non-empty, the final entry's To
//     always equals the order's current status
//   - at most one voucher is attached
//   - every mutation validates before any field is written, so a failed
//     operation leaves the order unchanged
//
// The struct uses private fields to enforce encapsulation; construct only
// through NewOrder (fresh bookings) or RestoreOrder (persistence).
type Order struct {
	id         kernel.OrderID
	clientID   kernel.ClientID
	executorID *kernel.ExecutorID
	price      kernel.Money
	status     Status
	// scheduledAt is the service date of the transfer, date-granular
	scheduledAt time.Time
	route       kernel.Route
	history     []HistoryEntry
	voucher     *Voucher
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder books a fresh order in NEW status with an empty history and no
// executor. createdAt stamps both creation and update times.
func NewOrder(
	id kernel.OrderID,
	clientID kernel.ClientID,
	price kernel.Money,
	scheduledAt time.Time,
	route kernel.Route,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		price.Validate(),
		route.Validate(),
		validateTime("scheduledAt", scheduledAt),
		validateTime("createdAt", createdAt),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		price:         price,
		status:        New,
		scheduledAt:   scheduledAt,
		route:         route,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistent storage. Unlike
// NewOrder it accepts any valid status, an optional executor, an optional
// voucher, and an existing history, and it re-checks the history/status
// consistency invariant.
func RestoreOrder(
	id kernel.OrderID,
	clientID kernel.ClientID,
	executorID *kernel.ExecutorID,
	price kernel.Money,
	status Status,
	scheduledAt time.Time,
	route kernel.Route,
	history []HistoryEntry,
	voucher *Voucher,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		price.Validate(),
		status.Validate(),
		route.Validate(),
		validateTime("scheduledAt", scheduledAt),
		validateTime("createdAt", createdAt),
		validateTime("updatedAt", updatedAt),
	); err != nil {
		return nil, err
	}

	if executorID != nil {
		if err := executorID.Validate(); err != nil {
			return nil, err
		}
	}

	if len(history) > 0 {
		last := history[len(history)-1]
		if last.To() != status {
			return nil, errs.NewValueIsInvalidErrorWithCause("statusHistory",
				fmt.Errorf("last history entry points to %s but order status is %s", last.To(), status))
		}
	}

	restored := &Order{
		id:            id,
		clientID:      clientID,
		price:         price,
		status:        status,
		scheduledAt:   scheduledAt,
		route:         route,
		history:       append([]HistoryEntry(nil), history...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if executorID != nil {
		eid := *executorID
		restored.executorID = &eid
	}
	if voucher != nil {
		v := *voucher
		restored.voucher = &v
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ClientID returns the booking client's identifier.
func (o *Order) ClientID() kernel.ClientID {
	return o.clientID
}

// ExecutorID returns the assigned executor's identifier.
// Returns nil if no executor is assigned.
func (o *Order) ExecutorID() *kernel.ExecutorID {
	if o.executorID == nil {
		return nil
	}
	eid := *o.executorID
	return &eid
}

// Price returns the booked amount.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ScheduledAt returns the service date of the transfer.
func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

// Route returns the pickup/drop-off pair.
func (o *Order) Route() kernel.Route {
	return o.route
}

// History returns a copy of the status history in chronological order.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// Voucher returns a copy of the attached voucher, or nil if the order has
// none.
func (o *Order) Voucher() *Voucher {
	if o.voucher == nil {
		return nil
	}
	v := *o.voucher
	return &v
}

// CreatedAt returns the booking time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target following the transition table.
//
// On success it appends exactly one history entry recording the prior and
// new status, the actor, the optional reason, and the change time, then
// updates the status and updatedAt. There are no further side effects: the
// voucher and executor reference are untouched.
//
// Returns:
//   - *InvalidTransitionError if target is not an allowed destination from
//     the current status (terminal statuses allow none)
//   - a validation error if target or actor is invalid
//
// All checks complete before any field is written; a failed call leaves
// status and history exactly as they were.
func (o *Order) ChangeStatus(target Status, actor kernel.ActorID, reason string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := validateTime("at", at); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	prior := o.status
	o.history = append(o.history, HistoryEntry{
		from:   &prior,
		to:     newStatus,
		at:     at,
		actor:  actor,
		reason: reason,
	})
	o.status = newStatus
	o.updatedAt = at
	return nil
}

// AssignExecutor attaches an executor to the order. Reassignment is
// allowed; assignment on a terminal order is not.
func (o *Order) AssignExecutor(executorID kernel.ExecutorID, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := executorID.Validate(); err != nil {
		return err
	}
	if err := validateTime("at", at); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot take an executor", o.status))
	}

	o.executorID = &executorID
	o.updatedAt = at
	return nil
}

// AttachVoucher gives the order its voucher. Each order owns at most one;
// attaching twice fails with ErrVoucherAlreadyAttached.
func (o *Order) AttachVoucher(voucher Voucher, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := validateTime("at", at); err != nil {
		return err
	}
	if o.voucher != nil {
		return ErrVoucherAlreadyAttached
	}

	o.voucher = &voucher
	o.updatedAt = at
	return nil
}

// RegenerateVoucher replaces the voucher's token with the given one,
// reactivates the voucher, and refreshes both the generation time and the
// expiry (issue time plus VoucherValidity).
//
// Returns the new voucher and the token it superseded, so the caller can
// retain the old token's hash for revocation. Fails with ErrNoVoucher when
// the order has no voucher; the order is left unchanged.
func (o *Order) RegenerateVoucher(token string, at time.Time) (Voucher, string, error) {
	if err := o.Validate(); err != nil {
		return Voucher{}, "", err
	}
	if o.voucher == nil {
		return Voucher{}, "", ErrNoVoucher
	}

	fresh, err := NewVoucher(token, at)
	if err != nil {
		return Voucher{}, "", err
	}

	oldToken := o.voucher.token
	o.voucher = &fresh
	o.updatedAt = at
	return fresh, oldToken, nil
}

// DeactivateExpiredVoucher clears the active flag on a voucher whose
// validity window has elapsed. Reports whether anything changed.
func (o *Order) DeactivateExpiredVoucher(at time.Time) bool {
	if o.voucher == nil || !o.voucher.isActive || !o.voucher.IsExpired(at) {
		return false
	}

	expired := o.voucher.deactivated()
	o.voucher = &expired
	o.updatedAt = at
	return true
}

func validateTime(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
