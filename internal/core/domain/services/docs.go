// Package services contains stateless domain services that implement
// business rules spanning aggregates or requiring capabilities the
// aggregates themselves should not own.
//
// The package includes:
//   - OrderVisibility: the read-time projection deciding which orders a
//     role-scoped viewer may see
//   - SecureTokenSource: cryptographically secure voucher token generation
package services
