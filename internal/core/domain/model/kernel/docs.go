// Package kernel provides core domain primitives for the dispatch-operations
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID, ClientID, ExecutorID, ActorID: typed identifier value objects
//     matching the console's prefixed wire form ("ORD-7701", "CL-101")
//   - Money: a value object for monetary amounts in minor units with an
//     ISO 4217 currency code
//   - Route: a value object for pickup/drop-off point pairs
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
