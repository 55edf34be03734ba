package services

import (
	"fmt"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/core/domain/model/order"
	"dispatchops/internal/pkg/errs"
)

// Role is the console role of the person reading data.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Admin has full visibility and roster control.
	Admin

	// Dispatcher runs the daily board with full order visibility.
	Dispatcher

	// Driver is an executor looking at their own assignments.
	Driver

	// Partner is a client account looking at their own bookings.
	Partner

	// Accountant reads everything for reporting purposes.
	Accountant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Admin:      "ADMIN",
		Dispatcher: "DISPATCHER",
		Driver:     "DRIVER",
		Partner:    "PARTNER",
		Accountant: "ACCOUNTANT",
	}
}

// RoleFromString parses a role from its wire name ("ADMIN", "DRIVER").
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Viewer identifies who is reading: a role plus the actor identifier the
// role-scoped rules compare against (executor id for drivers, client id
// for partners).
type Viewer struct {
	role  Role
	actor kernel.ActorID
}

// NewViewer creates a Viewer with a validated role and actor.
func NewViewer(role Role, actor kernel.ActorID) (Viewer, error) {
	if err := role.Validate(); err != nil {
		return Viewer{}, err
	}
	if err := actor.Validate(); err != nil {
		return Viewer{}, err
	}
	return Viewer{role: role, actor: actor}, nil
}

// Role returns the viewer's role.
func (v Viewer) Role() Role {
	return v.role
}

// Actor returns the viewer's actor identifier.
func (v Viewer) Actor() kernel.ActorID {
	return v.actor
}

// OrderVisibility is a domain service deciding which orders a viewer may
// see. Visibility is a pure read-time projection over (role, actor,
// order): it never restricts mutation capability and is applied after
// retrieval, keeping the storage layer authorization-free.
//
// Rules:
//   - DRIVER sees only orders whose executor reference equals their id
//   - PARTNER sees only orders whose client reference equals their id
//   - every other role sees everything
type OrderVisibility struct{}

// NewOrderVisibility creates a new OrderVisibility service.
func NewOrderVisibility() OrderVisibility {
	return OrderVisibility{}
}

// CanSee reports whether the viewer may see one order.
func (s OrderVisibility) CanSee(viewer Viewer, o *order.Order) bool {
	if o == nil {
		return false
	}

	switch viewer.role {
	case Driver:
		executorID := o.ExecutorID()
		return executorID != nil && executorID.String() == viewer.actor.String()
	case Partner:
		return o.ClientID().String() == viewer.actor.String()
	default:
		return true
	}
}

// Filter returns the orders the viewer may see, preserving input order.
func (s OrderVisibility) Filter(viewer Viewer, orders []*order.Order) []*order.Order {
	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if s.CanSee(viewer, o) {
			visible = append(visible, o)
		}
	}
	return visible
}
