package audit

import (
	"errors"
	"fmt"
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEntryIsNotConstructed is returned when using an improperly
// initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// EntityType names the kind of entity a mutation touched.
type EntityType int

const (
	// EntityTypeUnknown represents an invalid or undefined entity type.
	EntityTypeUnknown EntityType = iota

	// EntityOrder marks mutations of orders.
	EntityOrder

	// EntityClient marks mutations of roster clients.
	EntityClient

	// EntityExecutor marks mutations of roster executors.
	EntityExecutor

	// EntityVoucher marks mutations of order vouchers.
	EntityVoucher
)

func getEntityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		EntityOrder:    "ORDER",
		EntityClient:   "CLIENT",
		EntityExecutor: "EXECUTOR",
		EntityVoucher:  "VOUCHER",
	}
}

// EntityTypeFromString parses an entity type from its wire name.
func EntityTypeFromString(s string) (EntityType, error) {
	for entityType, name := range getEntityTypeStrings() {
		if name == s {
			return entityType, nil
		}
	}
	return EntityTypeUnknown, errs.NewValueIsInvalidErrorWithCause("entityType",
		fmt.Errorf("%q is not a valid entity type", s))
}

// Validate checks if the EntityType value is valid.
func (t EntityType) Validate() error {
	if _, ok := getEntityTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entityType",
			fmt.Errorf("%d is not a valid entity type", t))
	}
	return nil
}

// String returns the wire name of the entity type.
func (t EntityType) String() string {
	if str, ok := getEntityTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Action names the kind of mutation recorded.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionCreate records entity creation.
	ActionCreate

	// ActionUpdate records a field-level update.
	ActionUpdate

	// ActionDelete records entity removal.
	ActionDelete

	// ActionStatusChange records an order status transition.
	ActionStatusChange

	// ActionRegenerateToken records a voucher token replacement.
	ActionRegenerateToken
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionCreate:          "CREATE",
		ActionUpdate:          "UPDATE",
		ActionDelete:          "DELETE",
		ActionStatusChange:    "STATUS_CHANGE",
		ActionRegenerateToken: "REGENERATE_TOKEN",
	}
}

// ActionFromString parses an action from its wire name.
func ActionFromString(s string) (Action, error) {
	for action, name := range getActionStrings() {
		if name == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid audit action", s))
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid audit action", a))
	}
	return nil
}

// String returns the wire name of the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// Entry is one immutable record of a state-changing action. Entries are
// appended by command handlers in the same unit of work as the mutation
// they describe and are never updated or deleted afterwards.
type Entry struct {
	id         string
	entityType EntityType
	entityID   string
	action     Action
	occurredAt time.Time
	actor      kernel.ActorID
	details    string

	isConstructed bool
}

// NewEntry records a mutation. The entry identifier is generated.
func NewEntry(
	entityType EntityType,
	entityID string,
	action Action,
	occurredAt time.Time,
	actor kernel.ActorID,
	details string,
) (Entry, error) {
	return RestoreEntry(uuid.NewString(), entityType, entityID, action, occurredAt, actor, details)
}

// RestoreEntry reconstructs an entry from persistent storage.
func RestoreEntry(
	id string,
	entityType EntityType,
	entityID string,
	action Action,
	occurredAt time.Time,
	actor kernel.ActorID,
	details string,
) (Entry, error) {
	if id == "" {
		return Entry{}, errs.NewValueIsRequiredError("id")
	}
	if entityID == "" {
		return Entry{}, errs.NewValueIsRequiredError("entityID")
	}
	if occurredAt.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("occurredAt")
	}
	if err := errors.Join(
		entityType.Validate(),
		action.Validate(),
		actor.Validate(),
	); err != nil {
		return Entry{}, err
	}

	return Entry{
		id:            id,
		entityType:    entityType,
		entityID:      entityID,
		action:        action,
		occurredAt:    occurredAt,
		actor:         actor,
		details:       details,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was properly constructed.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() string {
	return e.id
}

// EntityType returns the kind of entity the mutation touched.
func (e Entry) EntityType() EntityType {
	return e.entityType
}

// EntityID returns the identifier of the touched entity.
func (e Entry) EntityID() string {
	return e.entityID
}

// Action returns the kind of mutation recorded.
func (e Entry) Action() Action {
	return e.action
}

// OccurredAt returns when the mutation happened.
func (e Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Actor returns who performed the mutation.
func (e Entry) Actor() kernel.ActorID {
	return e.actor
}

// Details returns the free-text description of the mutation.
func (e Entry) Details() string {
	return e.details
}
