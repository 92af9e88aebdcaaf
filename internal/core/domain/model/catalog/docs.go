// Package catalog models what a restaurant offers for pickup.
//
// The order core reads the catalog but never edits it, with one exception:
// a FoodItem's stock, which the inventory ledger decrements when an order
// line is reserved and increments when a failed order is compensated.
//
// Key business rules:
//   - A restaurant's pickup window is [open, close) on a single calendar day
//   - Stock never goes negative
//   - An order line may only reference an item of the ordered restaurant
package catalog
