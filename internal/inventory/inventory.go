package inventory

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Config describes the inventory to build
type Config struct {
	// ID identifies the inventory in events and logs. A UUID is used when empty.
	ID string

	// Kind selects a predefined layout. With KindCustom, Layout is required.
	Kind   Kind
	Layout Layout

	// Owner is the entity holding the inventory; it is the source of
	// published events. Optional.
	Owner core.Entity

	// EventBus receives a SlotChangedEvent for every slot change. Optional.
	EventBus events.EventBus
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	switch {
	case c.Kind == KindCustom && len(c.Layout) == 0:
		vb.Field("Layout", "is required for custom inventories")
	case c.Kind != KindCustom && len(c.Layout) > 0:
		vb.Fieldf("Layout", "must be empty for kind %s", c.Kind)
	case c.Kind != KindCustom && c.Kind.Layout() == nil:
		vb.Fieldf("Kind", "unknown kind %d", uint8(c.Kind))
	}
	return vb.Build()
}

// Inventory is a handle to a shared Backing. The zero value has no slots.
type Inventory struct {
	backing *Backing
}

// New builds a fresh backing and returns the first handle to it
func New(cfg *Config) (Inventory, error) {
	if err := cfg.Validate(); err != nil {
		return Inventory{}, errors.Wrap(err, "invalid config")
	}

	layout := cfg.Layout
	if cfg.Kind != KindCustom {
		layout = cfg.Kind.Layout()
	}

	backing, err := NewBacking(layout)
	if err != nil {
		return Inventory{}, err
	}

	backing.id = cfg.ID
	if backing.id == "" {
		backing.id = uuid.NewString()
	}
	backing.kind = cfg.Kind
	backing.owner = cfg.Owner
	backing.bus = cfg.EventBus

	return Inventory{backing: backing}, nil
}

// ID returns the inventory id
func (inv Inventory) ID() string {
	if inv.backing == nil {
		return ""
	}
	return inv.backing.id
}

// Kind returns the kind the inventory was built from
func (inv Inventory) Kind() Kind {
	if inv.backing == nil {
		return KindCustom
	}
	return inv.backing.kind
}

// Owner returns the owning entity, if any
func (inv Inventory) Owner() core.Entity {
	if inv.backing == nil {
		return nil
	}
	return inv.backing.owner
}

// Backing returns the shared backing
func (inv Inventory) Backing() *Backing {
	return inv.backing
}

// IsZero reports whether the handle points at no backing
func (inv Inventory) IsZero() bool {
	return inv.backing == nil
}

// Item locks the slot at index within area and returns a guard over it.
// It blocks while another holder has the slot. ok is false when the area is
// not part of this inventory or index is out of the area's range.
//
// Never call Item for a slot whose guard the calling goroutine still holds.
func (inv Inventory) Item(area Area, index int) (*SlotGuard, bool) {
	slot := inv.slot(area, index)
	if slot == nil {
		return nil, false
	}
	return slot.Lock(), true
}

// TryItem is Item without blocking. It returns NotFound for unknown slots
// and Unavailable when the slot is currently locked.
func (inv Inventory) TryItem(area Area, index int) (*SlotGuard, error) {
	slot := inv.slot(area, index)
	if slot == nil {
		return nil, slotNotFound(inv, area, index)
	}
	guard, ok := slot.TryLock()
	if !ok {
		return nil, errors.Unavailablef("slot %s[%d] is locked", area, index).
			WithMeta("inventory_id", inv.ID()).
			WithMeta("area", area.String()).
			WithMeta("slot", index)
	}
	return guard, nil
}

// Update locks one slot, calls fn and releases the slot when fn returns or
// panics. fn must not lock the same slot again.
func (inv Inventory) Update(area Area, index int, fn func(*SlotGuard) error) error {
	guard, ok := inv.Item(area, index)
	if !ok {
		return slotNotFound(inv, area, index)
	}
	defer guard.Release()

	return fn(guard)
}

// SameBacking reports whether both handles share one backing
func (inv Inventory) SameBacking(other Inventory) bool {
	return inv.backing != nil && inv.backing == other.backing
}

// NewHandle returns another handle to the same backing. It is equivalent to
// copying the value.
func (inv Inventory) NewHandle() Inventory {
	return Inventory{backing: inv.backing}
}

func (inv Inventory) slot(area Area, index int) *Slot {
	if inv.backing == nil {
		return nil
	}
	return inv.backing.slot(area, index)
}

func slotNotFound(inv Inventory, area Area, index int) *errors.Error {
	return errors.NotFoundf("slot %s[%d] not found", area, index).
		WithMeta("inventory_id", inv.ID()).
		WithMeta("area", area.String()).
		WithMeta("slot", index)
}
