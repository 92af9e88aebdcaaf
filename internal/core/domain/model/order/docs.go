// Package order provides the Order aggregate of the pickup service: an active,
// still-editable order, its lines, and the immutable history record it turns
// into once resolved.
//
// The package includes:
//   - Order: the active order of a user at a restaurant for one calendar day
//   - Line: a food item and quantity whose stock was reserved when the line was added
//   - Status: the lifecycle Active -> Succeeded | Failed
//   - History: the terminal snapshot of an order, never modified afterwards
//
// Key business rules:
//   - An order always has at least one line
//   - Lines are append-only while the order is active
//   - Resolving moves an order to history exactly once, with a terminal status
package order
