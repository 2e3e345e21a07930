// Package kernel holds the shared value objects of the ordering domain.
//
// The package includes:
//   - ID: positive integer identifier used by every persisted record
//   - Money: a non-negative amount with exactly two fractional digits, backed by
//     github.com/shopspring/decimal so prices never pass through float64
//
// Money mirrors the storage column numeric(6,2): amounts above MaxAmount are rejected
// rather than rounded, and prices must be at least MinPrice.
package kernel
