package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

type WindowTestSuite struct {
	suite.Suite
	player inventory.Inventory
	chest  inventory.Inventory
}

func TestWindowSuite(t *testing.T) {
	suite.Run(t, new(WindowTestSuite))
}

func (s *WindowTestSuite) SetupTest() {
	var err error
	s.player, err = inventory.New(&inventory.Config{Kind: inventory.KindPlayer})
	s.Require().NoError(err)
	s.chest, err = inventory.New(&inventory.Config{Kind: inventory.KindChest})
	s.Require().NoError(err)
}

func (s *WindowTestSuite) TestPlayerWindowNumbering() {
	w, err := inventory.PlayerWindow(s.player)
	s.Require().NoError(err)
	s.Equal(46, w.Len())

	testCases := []struct {
		index int
		ref   inventory.SlotRef
	}{
		{0, inventory.SlotRef{Area: inventory.AreaCraftingOutput, Index: 0}},
		{1, inventory.SlotRef{Area: inventory.AreaCraftingInput, Index: 0}},
		{5, inventory.SlotRef{Area: inventory.AreaHelmet, Index: 0}},
		{9, inventory.SlotRef{Area: inventory.AreaStorage, Index: 0}},
		{35, inventory.SlotRef{Area: inventory.AreaStorage, Index: 26}},
		{36, inventory.SlotRef{Area: inventory.AreaHotbar, Index: 0}},
		{45, inventory.SlotRef{Area: inventory.AreaOffhand, Index: 0}},
	}
	for _, tc := range testCases {
		s.Run(tc.ref.String(), func() {
			inv, ref, ok := w.Locate(tc.index)
			s.Require().True(ok)
			s.True(inv.SameBacking(s.player))
			s.Equal(tc.ref, ref)

			index, ok := w.IndexOf(s.player, tc.ref)
			s.True(ok)
			s.Equal(tc.index, index)
		})
	}

	_, _, ok := w.Locate(46)
	s.False(ok)
	_, _, ok = w.Locate(-1)
	s.False(ok)
}

func (s *WindowTestSuite) TestContainerWindow() {
	w, err := inventory.ContainerWindow(s.chest, s.player)
	s.Require().NoError(err)
	s.Equal(27+27+9, w.Len())

	inv, ref, ok := w.Locate(26)
	s.Require().True(ok)
	s.True(inv.SameBacking(s.chest))
	s.Equal(inventory.SlotRef{Area: inventory.AreaStorage, Index: 26}, ref)

	inv, ref, ok = w.Locate(27)
	s.Require().True(ok)
	s.True(inv.SameBacking(s.player))
	s.Equal(inventory.SlotRef{Area: inventory.AreaStorage, Index: 0}, ref)

	index, ok := w.IndexOf(s.player, inventory.SlotRef{Area: inventory.AreaHotbar, Index: 8})
	s.True(ok)
	s.Equal(62, index)

	_, ok = w.IndexOf(s.player, inventory.SlotRef{Area: inventory.AreaOffhand, Index: 0})
	s.False(ok)
	_, ok = w.IndexOf(s.chest, inventory.SlotRef{Area: inventory.AreaStorage, Index: 27})
	s.False(ok)
}

func (s *WindowTestSuite) TestItemWritesThroughToInventory() {
	w, err := inventory.ContainerWindow(s.chest, s.player)
	s.Require().NoError(err)

	guard, ok := w.Item(54)
	s.Require().True(ok)
	guard.Set(inventory.NewItemStack(catalog.Torch, 16))
	guard.Release()

	guard, ok = s.player.Item(inventory.AreaHotbar, 0)
	s.Require().True(ok)
	stack, occupied := guard.Get()
	guard.Release()
	s.True(occupied)
	s.Equal(catalog.Torch, stack.Item())

	_, ok = w.Item(63)
	s.False(ok)
}

func (s *WindowTestSuite) TestInvalidWindows() {
	_, err := inventory.NewWindow()
	s.True(errors.IsInvalidArgument(err))

	_, err = inventory.NewWindow(inventory.WindowSection{Inventory: s.chest, Area: inventory.AreaHotbar})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "area hotbar not in inventory")

	_, err = inventory.NewWindow(
		inventory.WindowSection{Inventory: s.chest, Area: inventory.AreaStorage},
		inventory.WindowSection{Inventory: s.chest.NewHandle(), Area: inventory.AreaStorage},
	)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "duplicate area storage")

	_, err = inventory.NewWindow(inventory.WindowSection{Area: inventory.AreaStorage})
	s.True(errors.IsInvalidArgument(err))

	_, err = inventory.PlayerWindow(inventory.Inventory{})
	s.True(errors.IsInvalidArgument(err))

	_, err = inventory.ContainerWindow(s.chest, inventory.Inventory{})
	s.True(errors.IsInvalidArgument(err))
}
