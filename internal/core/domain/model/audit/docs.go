// Package audit provides the append-only record of state-changing actions.
// Every successful mutation in the system leaves exactly one Entry behind,
// written in the same unit of work as the mutation itself, so the trail
// can be used to reconstruct who did what and when.
package audit
