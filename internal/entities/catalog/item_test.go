package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
)

func TestItemIDsAreStable(t *testing.T) {
	// ids are part of the wire contract; never renumber
	assert.Equal(t, uint16(0), catalog.Air.ID())
	assert.Equal(t, uint16(1), catalog.Stone.ID())
	assert.Equal(t, uint16(19), catalog.IronSword.ID())
	assert.Equal(t, uint16(34), catalog.Elytra.ID())
}

func TestItemLookups(t *testing.T) {
	for _, item := range catalog.Items() {
		byName, ok := catalog.ItemFromName(item.Name())
		require.True(t, ok, item.Name())
		assert.Equal(t, item, byName)

		byID, ok := catalog.ItemFromID(item.ID())
		require.True(t, ok)
		assert.Equal(t, item, byID)

		assert.True(t, item.IsValid())
		assert.NotZero(t, item.StackSize(), item.Name())
	}

	_, ok := catalog.ItemFromName("netherite_sword")
	assert.False(t, ok)

	_, ok = catalog.ItemFromID(9999)
	assert.False(t, ok)

	assert.False(t, catalog.Air.IsValid())
	assert.Equal(t, "item(9999)", catalog.Item(9999).String())
}

func TestItemDurability(t *testing.T) {
	d, ok := catalog.IronSword.Durability()
	assert.True(t, ok)
	assert.Equal(t, uint32(250), d)

	_, ok = catalog.Stone.Durability()
	assert.False(t, ok)

	_, ok = catalog.Item(9999).Durability()
	assert.False(t, ok)

	for _, item := range catalog.Items() {
		if _, damageable := item.Durability(); damageable {
			assert.Equal(t, uint32(1), item.StackSize(), "%s is damageable and must not stack", item)
		}
	}
}
