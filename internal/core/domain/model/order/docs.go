// Package order provides the Order aggregate of the ordering lifecycle.
//
// The package includes:
//   - Order: placed from a non-empty cart, owning its immutable Items
//   - Item: a snapshot of one cart line (quantity, unit price, price)
//   - Status: the two-valued delivered flag
//
// Key business rules:
//   - An order is placed atomically from all cart lines of its owner
//   - Total equals the sum of the item prices at placement and is never recomputed
//   - Owner and date are fixed at placement
//   - Only the delivery crew reference and the status change afterwards
//
// Lifecycle:
//
//	Placed ──> Assigned ──> Delivered ──> (deleted)
//
// Only Status is stored. An order without delivery crew and status false is Placed, with
// a crew it is Assigned, and status true makes it Delivered regardless of the crew.
package order
