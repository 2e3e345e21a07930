// Package cart models the per-user ledger of pending line items.
//
// A Line snapshots the menu item's price at the moment it is added: unit price and
// line price never follow later catalog changes. A user holds at most one line per
// menu item; adding the same item twice is a constraint violation, not a merge.
package cart
