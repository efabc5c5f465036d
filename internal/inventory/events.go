package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// EventSlotChanged is published on the inventory's event bus whenever a slot
// guard is released after its content changed.
const EventSlotChanged = "inventory.slot_changed"

// SlotChangedEvent describes one slot content change. The source entity is
// the inventory owner. Before and After are nil for an empty slot.
type SlotChangedEvent struct {
	*events.GameEvent

	InventoryID string
	Area        Area
	Index       int
	Before      *ItemStack
	After       *ItemStack
}

func newSlotChangedEvent(b *Backing, s *Slot, before ItemStack, hadBefore bool, after ItemStack, hasAfter bool) *SlotChangedEvent {
	event := &SlotChangedEvent{
		GameEvent:   events.NewGameEvent(EventSlotChanged, b.owner, nil),
		InventoryID: b.id,
		Area:        s.area,
		Index:       s.index,
	}
	if hadBefore {
		event.Before = &before
	}
	if hasAfter {
		event.After = &after
	}
	return event
}

// publish runs outside any slot lock so handlers may lock slots themselves
func (b *Backing) publish(event *SlotChangedEvent) {
	if err := b.bus.Publish(context.Background(), event); err != nil {
		slog.Warn("failed to publish slot change",
			"inventory_id", b.id,
			"area", event.Area.String(),
			"slot", event.Index,
			"error", err,
		)
	}
}
