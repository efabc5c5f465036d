// Package inventory implements inventories made of named areas of
// independently locked slots.
//
// An Inventory is a handle: a small value pointing at a shared Backing.
// Copying the value or calling NewHandle gives another handle to the same
// slots, and SameBacking reports whether two handles share one. The backing
// lives as long as any handle references it.
//
// Slots are reached by area and index:
//
//	guard, ok := inv.Item(inventory.AreaHotbar, 0)
//	if !ok {
//	    return // area not in this inventory, or index out of range
//	}
//	defer guard.Release()
//
//	if stack := guard.Stack(); stack != nil {
//	    stack.Remove(1)
//	}
//
// Item blocks until the slot's lock is free. TryItem never blocks. Update
// runs a function with the slot locked and releases it on every return path.
//
// # Hazard
//
// Never hold two guards for the same slot at once from the same goroutine.
// Slot locks are sync.Mutex values, which are not reentrant: the second
// acquisition blocks forever and the goroutine deadlocks against itself.
// Release a guard (or let Update return) before touching the same slot
// again. When an operation needs several slots, use LockSlots or LockArea:
// they refuse duplicate slots and always lock in ascending slot order, so
// two goroutines locking overlapping sets cannot deadlock each other.
//
// Distinct slots are fully independent; no ordering is promised between
// operations on different slots.
package inventory
