package order

import (
	"time"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
)

// HistoryEntry is one step in an order's status history. The history is
// append-only: entries are created by status changes and never edited or
// removed. The first entry of an order has a nil From, every later entry's
// From equals the previous entry's To.
type HistoryEntry struct {
	from   *Status
	to     Status
	at     time.Time
	actor  kernel.ActorID
	reason string
}

// RestoreHistoryEntry reconstructs a history entry from persistent storage.
// Reason may be empty; from is nil for the entry that recorded the order's
// first transition target at creation time.
func RestoreHistoryEntry(from *Status, to Status, at time.Time, actor kernel.ActorID, reason string) (HistoryEntry, error) {
	if from != nil {
		if err := from.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}
	if err := to.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if at.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("at")
	}
	if err := actor.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		from:   from,
		to:     to,
		at:     at,
		actor:  actor,
		reason: reason,
	}, nil
}

// From returns the prior status, or nil for the initial entry.
func (h HistoryEntry) From() *Status {
	if h.from == nil {
		return nil
	}
	prior := *h.from
	return &prior
}

// To returns the status the order moved to.
func (h HistoryEntry) To() Status {
	return h.to
}

// At returns when the change happened.
func (h HistoryEntry) At() time.Time {
	return h.at
}

// Actor returns who performed the change.
func (h HistoryEntry) Actor() kernel.ActorID {
	return h.actor
}

// Reason returns the optional free-text justification.
func (h HistoryEntry) Reason() string {
	return h.reason
}
