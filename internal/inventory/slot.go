package inventory

import (
	"sync"
)

// Slot is one storage location holding at most one ItemStack
type Slot struct {
	mu       sync.Mutex
	stack    ItemStack
	occupied bool

	backing *Backing
	area    Area
	index   int
	flat    int
}

// Area returns the area the slot belongs to
func (s *Slot) Area() Area {
	return s.area
}

// Index returns the slot's index within its area
func (s *Slot) Index() int {
	return s.index
}

// Lock blocks until the slot is free and returns a guard over its content
func (s *Slot) Lock() *SlotGuard {
	s.mu.Lock()
	return newSlotGuard(s)
}

// TryLock locks the slot only if it is free
func (s *Slot) TryLock() (*SlotGuard, bool) {
	if !s.mu.TryLock() {
		return nil, false
	}
	return newSlotGuard(s), true
}

// SlotGuard grants exclusive access to one slot until Release. A guard must
// not be shared between goroutines.
type SlotGuard struct {
	slot *Slot

	before      ItemStack
	wasOccupied bool
	released    bool
}

func newSlotGuard(s *Slot) *SlotGuard {
	return &SlotGuard{
		slot:        s,
		before:      s.stack,
		wasOccupied: s.occupied,
	}
}

func (g *SlotGuard) mustHold() {
	if g.released {
		panic("inventory: slot guard used after Release")
	}
}

// Area returns the area of the guarded slot
func (g *SlotGuard) Area() Area {
	return g.slot.area
}

// Index returns the index of the guarded slot within its area
func (g *SlotGuard) Index() int {
	return g.slot.index
}

// Stack returns a pointer to the stored stack, or nil when the slot is empty.
// The pointer must not be used after Release.
func (g *SlotGuard) Stack() *ItemStack {
	g.mustHold()
	if !g.slot.occupied {
		return nil
	}
	return &g.slot.stack
}

// Get returns a copy of the stored stack
func (g *SlotGuard) Get() (ItemStack, bool) {
	g.mustHold()
	return g.slot.stack, g.slot.occupied
}

// IsEmpty reports whether the slot holds no stack
func (g *SlotGuard) IsEmpty() bool {
	g.mustHold()
	return !g.slot.occupied
}

// Set stores stack in the slot, replacing any previous content
func (g *SlotGuard) Set(stack ItemStack) {
	g.mustHold()
	g.slot.stack = stack
	g.slot.occupied = true
}

// Clear empties the slot
func (g *SlotGuard) Clear() {
	g.mustHold()
	g.slot.stack = ItemStack{}
	g.slot.occupied = false
}

// Take empties the slot and returns what it held
func (g *SlotGuard) Take() (ItemStack, bool) {
	stack, ok := g.Get()
	g.Clear()
	return stack, ok
}

// Release unlocks the slot. Calling Release more than once is a no-op.
// When the slot content changed while held, a SlotChangedEvent is published
// after the lock is dropped.
func (g *SlotGuard) Release() {
	if event := g.unlock(); event != nil {
		g.slot.backing.publish(event)
	}
}

// unlock drops the lock and returns the change event to publish, if any
func (g *SlotGuard) unlock() *SlotChangedEvent {
	if g.released {
		return nil
	}
	g.released = true

	s := g.slot
	changed := s.occupied != g.wasOccupied || (s.occupied && s.stack != g.before)

	var event *SlotChangedEvent
	if changed && s.backing != nil && s.backing.bus != nil {
		event = newSlotChangedEvent(s.backing, s, g.before, g.wasOccupied, s.stack, s.occupied)
	}

	s.mu.Unlock()
	return event
}
