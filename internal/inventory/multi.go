package inventory

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// SlotRef names one slot of an inventory
type SlotRef struct {
	Area  Area
	Index int
}

// String implements fmt.Stringer
func (r SlotRef) String() string {
	return fmt.Sprintf("%s[%d]", r.Area, r.Index)
}

// MultiGuard holds the locks of several slots of one inventory
type MultiGuard struct {
	guards []*SlotGuard // in request order
	order  []int        // indices into guards, in lock order
}

// LockSlots locks every referenced slot and returns a guard over all of them.
// Slots are locked in ascending position within the backing regardless of
// the order of refs, so concurrent callers cannot deadlock on each other.
// A ref that does not resolve yields NotFound; the same slot named twice
// yields InvalidArgument.
func (inv Inventory) LockSlots(refs ...SlotRef) (*MultiGuard, error) {
	if len(refs) == 0 {
		return nil, errors.InvalidArgument("at least one slot is required")
	}

	slots := make([]*Slot, len(refs))
	seen := make(map[int]SlotRef, len(refs))
	for i, ref := range refs {
		slot := inv.slot(ref.Area, ref.Index)
		if slot == nil {
			return nil, slotNotFound(inv, ref.Area, ref.Index)
		}
		if prev, dup := seen[slot.flat]; dup {
			return nil, errors.InvalidArgumentf("slot %s requested twice", prev).
				WithMeta("inventory_id", inv.ID())
		}
		seen[slot.flat] = ref
		slots[i] = slot
	}

	return lockOrdered(slots), nil
}

// LockArea locks every slot of area in order. Slot(i) of the result is the
// slot at index i of the area.
func (inv Inventory) LockArea(area Area) (*MultiGuard, error) {
	if inv.backing == nil {
		return nil, slotNotFound(inv, area, 0)
	}
	slice, ok := inv.backing.AreaSlice(area)
	if !ok {
		return nil, errors.NotFoundf("area %s not found", area).
			WithMeta("inventory_id", inv.ID()).
			WithMeta("area", area.String())
	}

	slots := make([]*Slot, len(slice))
	for i := range slice {
		slots[i] = &slice[i]
	}
	return lockOrdered(slots), nil
}

func lockOrdered(slots []*Slot) *MultiGuard {
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return slots[order[a]].flat < slots[order[b]].flat
	})

	m := &MultiGuard{
		guards: make([]*SlotGuard, len(slots)),
		order:  order,
	}
	for _, i := range order {
		m.guards[i] = slots[i].Lock()
	}
	return m
}

// Len returns the number of held slots
func (m *MultiGuard) Len() int {
	return len(m.guards)
}

// Slot returns the guard of the i-th requested slot
func (m *MultiGuard) Slot(i int) *SlotGuard {
	return m.guards[i]
}

// Release unlocks all slots in reverse lock order, then publishes the
// change events in request order. It is safe to call twice.
func (m *MultiGuard) Release() {
	pending := make([]*SlotChangedEvent, len(m.guards))
	for i := len(m.order) - 1; i >= 0; i-- {
		pending[m.order[i]] = m.guards[m.order[i]].unlock()
	}
	for i, event := range pending {
		if event != nil {
			m.guards[i].slot.backing.publish(event)
		}
	}
}
