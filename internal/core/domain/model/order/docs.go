// Package order provides the domain entity and business rules for order
// tracking. It implements the Order aggregate root with lifecycle status
// management.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, properties, and
//     lifecycle timestamps
//   - Data: the flat representation handed across the core boundary
//
// Key business rules:
//   - Orders must have a non-empty order ID, item name, and customer ID, and
//     a strictly positive quantity
//   - Orders start in the "pending" status; any non-empty string is a valid
//     status afterwards (the vocabulary is intentionally open)
//   - Every status change restamps the update timestamp; the creation
//     timestamp never changes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
