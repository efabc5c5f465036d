// Package testutils provides inventory fixtures shared by tests
package testutils

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

const (
	// TestOwnerID is the default owner of fixture inventories
	TestOwnerID = "player_test_001"

	// TestInventoryID is the default fixture inventory id
	TestInventoryID = "inv_test_001"
)

// Owner is a minimal core.Entity for inventory owners in tests
type Owner struct {
	ID string
}

// GetID returns the owner id
func (o *Owner) GetID() string { return o.ID }

// GetType returns "player"
func (o *Owner) GetType() string { return "player" }

var _ core.Entity = (*Owner)(nil)

// CreateTestInventory builds an inventory of kind owned by TestOwnerID.
// bus may be nil.
func CreateTestInventory(t testing.TB, kind inventory.Kind, bus events.EventBus) inventory.Inventory {
	t.Helper()

	inv, err := inventory.New(&inventory.Config{
		ID:       TestInventoryID,
		Kind:     kind,
		Owner:    &Owner{ID: TestOwnerID},
		EventBus: bus,
	})
	require.NoError(t, err)
	return inv
}

// FillSlots stores each stack at its slot
func FillSlots(t testing.TB, inv inventory.Inventory, contents map[inventory.SlotRef]inventory.ItemStack) {
	t.Helper()

	for ref, stack := range contents {
		err := inv.Update(ref.Area, ref.Index, func(g *inventory.SlotGuard) error {
			g.Set(stack)
			return nil
		})
		require.NoError(t, err, "fill %s", ref)
	}
}

// SlotContent returns a copy of a slot's stack; ok is false when empty
func SlotContent(t testing.TB, inv inventory.Inventory, ref inventory.SlotRef) (inventory.ItemStack, bool) {
	t.Helper()

	g, found := inv.Item(ref.Area, ref.Index)
	require.True(t, found, "slot %s not found", ref)
	defer g.Release()
	return g.Get()
}
