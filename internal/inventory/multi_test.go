package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

type MultiGuardTestSuite struct {
	suite.Suite
	inv inventory.Inventory
}

func TestMultiGuardSuite(t *testing.T) {
	suite.Run(t, new(MultiGuardTestSuite))
}

func (s *MultiGuardTestSuite) SetupTest() {
	inv, err := inventory.New(&inventory.Config{Kind: inventory.KindPlayer})
	s.Require().NoError(err)
	s.inv = inv
}

func (s *MultiGuardTestSuite) TestSlotOrderFollowsRequest() {
	refs := []inventory.SlotRef{
		{Area: inventory.AreaOffhand, Index: 0},
		{Area: inventory.AreaCraftingOutput, Index: 0},
		{Area: inventory.AreaHotbar, Index: 5},
	}

	m, err := s.inv.LockSlots(refs...)
	s.Require().NoError(err)
	defer m.Release()

	s.Equal(3, m.Len())
	for i, ref := range refs {
		s.Equal(ref.Area, m.Slot(i).Area())
		s.Equal(ref.Index, m.Slot(i).Index())
	}
}

func (s *MultiGuardTestSuite) TestErrors() {
	_, err := s.inv.LockSlots()
	s.True(errors.IsInvalidArgument(err))

	_, err = s.inv.LockSlots(
		inventory.SlotRef{Area: inventory.AreaHotbar, Index: 0},
		inventory.SlotRef{Area: inventory.AreaHotbar, Index: 9},
	)
	s.True(errors.IsNotFound(err))

	_, err = s.inv.LockSlots(
		inventory.SlotRef{Area: inventory.AreaHotbar, Index: 1},
		inventory.SlotRef{Area: inventory.AreaHotbar, Index: 1},
	)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "hotbar[1] requested twice")

	// nothing stays locked after a failed request
	guard, err := s.inv.TryItem(inventory.AreaHotbar, 0)
	s.Require().NoError(err)
	guard.Release()

	_, err = s.inv.LockArea(inventory.AreaFurnaceFuel)
	s.True(errors.IsNotFound(err))

	_, err = inventory.Inventory{}.LockArea(inventory.AreaStorage)
	s.True(errors.IsNotFound(err))
}

func (s *MultiGuardTestSuite) TestReleaseUnlocksAll() {
	m, err := s.inv.LockArea(inventory.AreaHotbar)
	s.Require().NoError(err)
	s.Equal(9, m.Len())

	_, err = s.inv.TryItem(inventory.AreaHotbar, 4)
	s.True(errors.IsUnavailable(err))

	m.Release()
	m.Release()

	for i := 0; i < 9; i++ {
		guard, err := s.inv.TryItem(inventory.AreaHotbar, i)
		s.Require().NoError(err)
		guard.Release()
	}
}

func (s *MultiGuardTestSuite) TestSwapThroughMultiGuard() {
	err := s.inv.Update(inventory.AreaHotbar, 0, func(g *inventory.SlotGuard) error {
		g.Set(inventory.NewItemStack(catalog.Stone, 10))
		return nil
	})
	s.Require().NoError(err)

	m, err := s.inv.LockSlots(
		inventory.SlotRef{Area: inventory.AreaHotbar, Index: 0},
		inventory.SlotRef{Area: inventory.AreaStorage, Index: 0},
	)
	s.Require().NoError(err)

	from, to := m.Slot(0), m.Slot(1)
	stack, _ := from.Take()
	to.Set(stack)
	m.Release()

	err = s.inv.Update(inventory.AreaStorage, 0, func(g *inventory.SlotGuard) error {
		got, ok := g.Get()
		s.True(ok)
		s.Equal(uint32(10), got.Count())
		return nil
	})
	s.Require().NoError(err)
}

func (s *MultiGuardTestSuite) TestOpposingOrderDoesNotDeadlock() {
	a := inventory.SlotRef{Area: inventory.AreaStorage, Index: 3}
	b := inventory.SlotRef{Area: inventory.AreaHotbar, Index: 7}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(reverse bool) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				refs := []inventory.SlotRef{a, b}
				if reverse {
					refs = []inventory.SlotRef{b, a}
				}
				m, err := s.inv.LockSlots(refs...)
				if err != nil {
					return
				}
				m.Release()
			}
		}(w%2 == 1)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("opposing lock orders deadlocked")
	}
}

func (s *MultiGuardTestSuite) TestEventsPublishedAfterAllUnlocked() {
	bus := events.NewBus()
	inv, err := inventory.New(&inventory.Config{Kind: inventory.KindChest, EventBus: bus})
	s.Require().NoError(err)

	var seen []int
	bus.SubscribeFunc(inventory.EventSlotChanged, 0, func(_ context.Context, e events.Event) error {
		changed := e.(*inventory.SlotChangedEvent)
		seen = append(seen, changed.Index)
		// every slot of the guard must already be free
		for _, i := range []int{2, 7} {
			g, tryErr := inv.TryItem(inventory.AreaStorage, i)
			s.Require().NoError(tryErr)
			g.Release()
		}
		return nil
	})

	m, err := inv.LockSlots(
		inventory.SlotRef{Area: inventory.AreaStorage, Index: 7},
		inventory.SlotRef{Area: inventory.AreaStorage, Index: 2},
	)
	s.Require().NoError(err)
	m.Slot(0).Set(inventory.NewItemStack(catalog.Stick, 1))
	m.Slot(1).Set(inventory.NewItemStack(catalog.Stick, 2))
	m.Release()

	s.Equal([]int{7, 2}, seen)
}
