// Package order provides domain entities and business logic for booking
// management in the dispatch-operations system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning the booking, its status history,
//     and its voucher
//   - Status: a state machine that enforces valid order status transitions
//   - Voucher: the bearer credential granting passengers access to order
//     details
//   - HistoryEntry: one append-only record of a status change
//
// Key business rules:
//   - Status follows the transition table exactly; terminal statuses
//     (COMPLETED, NO_SHOW, CANCELLED) allow no further changes
//   - The status history is append-only and its last entry always matches
//     the current status
//   - Each order owns at most one voucher; regeneration replaces the token
//     and refreshes the 48-hour validity window
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
