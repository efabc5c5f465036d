package inventory

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// ItemStack is an item token with a count and optional accumulated damage.
//
// ItemStack is a plain value: copying it copies the stack, and two stacks are
// equal under == when item, count and damage all match. A count of zero is a
// valid value; callers decide when to clear the slot holding it.
type ItemStack struct {
	item  catalog.Item
	count uint32

	// damage is only meaningful when tracksDamage is set
	damage       uint32
	tracksDamage bool
}

// NewItemStack creates a stack with no damage tracking
func NewItemStack(item catalog.Item, count uint32) ItemStack {
	return ItemStack{
		item:  item,
		count: count,
	}
}

// NewDamagedItemStack creates a stack that tracks damage, starting at damage
func NewDamagedItemStack(item catalog.Item, count, damage uint32) ItemStack {
	return ItemStack{
		item:         item,
		count:        count,
		damage:       damage,
		tracksDamage: true,
	}
}

// Item returns the item type of the stack
func (s ItemStack) Item() catalog.Item {
	return s.item
}

// Count returns the number of items in the stack
func (s ItemStack) Count() uint32 {
	return s.count
}

// Add adds count items and returns the new count. If the result would not
// fit in a uint32 the stack is left unchanged and an OutOfRange error is
// returned.
func (s *ItemStack) Add(count uint32) (uint32, error) {
	if count > math.MaxUint32-s.count {
		return s.count, errors.OutOfRangef("adding %d to a stack of %d overflows", count, s.count).
			WithMeta("item", s.item.Name()).
			WithMeta("count", s.count).
			WithMeta("amount", count)
	}
	s.count += count
	return s.count, nil
}

// Remove takes count items from the stack. It returns false, leaving the
// stack untouched, when fewer than count items are present.
func (s *ItemStack) Remove(count uint32) bool {
	if count > s.count {
		return false
	}
	s.count -= count
	return true
}

// SetItem replaces the item type without touching count or damage
func (s *ItemStack) SetItem(item catalog.Item) {
	s.item = item
}

// SetCount overwrites the count
func (s *ItemStack) SetCount(count uint32) {
	s.count = count
}

// Damage accumulates amount into the stack's damage and reports whether the
// item is now broken. Stacks that do not track damage are left unchanged and
// never report broken. Damage keeps accumulating past the durability and
// saturates at math.MaxUint32.
func (s *ItemStack) Damage(amount uint32) bool {
	if !s.tracksDamage {
		return false
	}
	if amount > math.MaxUint32-s.damage {
		s.damage = math.MaxUint32
	} else {
		s.damage += amount
	}
	return s.IsBroken()
}

// DamageValue returns the accumulated damage. ok is false when the stack does
// not track damage.
func (s ItemStack) DamageValue() (damage uint32, ok bool) {
	return s.damage, s.tracksDamage
}

// SetDamage starts tracking damage at the given value
func (s *ItemStack) SetDamage(damage uint32) {
	s.damage = damage
	s.tracksDamage = true
}

// ClearDamage stops tracking damage
func (s *ItemStack) ClearDamage() {
	s.damage = 0
	s.tracksDamage = false
}

// IsBroken reports whether tracked damage has reached the item's durability
func (s ItemStack) IsBroken() bool {
	if !s.tracksDamage {
		return false
	}
	durability, ok := s.item.Durability()
	return ok && s.damage >= durability
}

// CanStackWith reports whether other may be merged into s: same item and the
// same damage state.
func (s ItemStack) CanStackWith(other ItemStack) bool {
	return s.item == other.item &&
		s.tracksDamage == other.tracksDamage &&
		s.damage == other.damage
}

// MaxStack returns the catalog stack size for the stack's item
func (s ItemStack) MaxStack() uint32 {
	return s.item.StackSize()
}

// SpaceLeft returns how many more items fit before the stack reaches MaxStack
func (s ItemStack) SpaceLeft() uint32 {
	if s.count >= s.MaxStack() {
		return 0
	}
	return s.MaxStack() - s.count
}

// String implements fmt.Stringer
func (s ItemStack) String() string {
	if s.tracksDamage {
		return fmt.Sprintf("%s x%d (damage %d)", s.item, s.count, s.damage)
	}
	return fmt.Sprintf("%s x%d", s.item, s.count)
}
