// Package errors provides coded errors for the inventory core and the
// services built on it.
//
// Inventory operations report most failures as plain values (an absent
// slot, a false from ItemStack.Remove). Entry points that return an error
// use this package so callers can branch on the code:
//
//	stack := inventory.NewItemStack(catalog.Stone, 60)
//	if _, err := stack.Add(n); errors.IsOutOfRange(err) {
//	    // count would overflow uint32
//	}
//
// Codes used across the repo:
//   - NotFound: unknown inventory, area not defined for a layout, slot index out of range
//   - InvalidArgument: bad input or config
//   - FailedPrecondition: not enough items, incompatible stacks
//   - OutOfRange: count arithmetic would overflow
//   - Unavailable: slot lock held by someone else on a non-blocking acquire
//   - AlreadyExists: inventory id already registered
//   - Internal: anything unexpected
//
// Errors carry metadata (inventory_id, area, slot) that survives Wrap and is
// forwarded as a gRPC status detail by ToGRPCError for the protocol layer.
package errors
