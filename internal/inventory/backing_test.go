package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

type BackingTestSuite struct {
	suite.Suite
}

func TestBackingSuite(t *testing.T) {
	suite.Run(t, new(BackingTestSuite))
}

func (s *BackingTestSuite) TestPlayerLayoutOffsets() {
	backing, err := inventory.NewBacking(inventory.KindPlayer.Layout())
	s.Require().NoError(err)

	s.Equal(46, backing.Len())

	testCases := []struct {
		area   inventory.Area
		offset int
		size   int
	}{
		{inventory.AreaCraftingOutput, 0, 1},
		{inventory.AreaCraftingInput, 1, 4},
		{inventory.AreaHelmet, 5, 1},
		{inventory.AreaBoots, 8, 1},
		{inventory.AreaStorage, 9, 27},
		{inventory.AreaHotbar, 36, 9},
		{inventory.AreaOffhand, 45, 1},
	}
	for _, tc := range testCases {
		s.Run(tc.area.String(), func() {
			offset, size, ok := backing.AreaRange(tc.area)
			s.Require().True(ok)
			s.Equal(tc.offset, offset)
			s.Equal(tc.size, size)

			slots, ok := backing.AreaSlice(tc.area)
			s.Require().True(ok)
			s.Len(slots, tc.size)
			for i := range slots {
				s.Equal(tc.area, slots[i].Area())
				s.Equal(i, slots[i].Index())
			}
		})
	}
}

func (s *BackingTestSuite) TestUndefinedArea() {
	backing, err := inventory.NewBacking(inventory.KindChest.Layout())
	s.Require().NoError(err)

	slots, ok := backing.AreaSlice(inventory.AreaHotbar)
	s.False(ok)
	s.Nil(slots)
	s.False(backing.Has(inventory.AreaHotbar))
	s.True(backing.Has(inventory.AreaStorage))

	_, _, ok = backing.AreaRange(inventory.Area(200))
	s.False(ok)
}

func (s *BackingTestSuite) TestInvalidLayouts() {
	testCases := []struct {
		name   string
		layout inventory.Layout
		errMsg string
	}{
		{
			name:   "empty",
			layout: nil,
			errMsg: "Layout: is required",
		},
		{
			name: "duplicate area",
			layout: inventory.Layout{
				{Area: inventory.AreaHotbar, Size: 9},
				{Area: inventory.AreaHotbar, Size: 9},
			},
			errMsg: "duplicate area hotbar",
		},
		{
			name:   "zero size",
			layout: inventory.Layout{{Area: inventory.AreaStorage, Size: 0}},
			errMsg: "must be greater than 0",
		},
		{
			name:   "unknown area",
			layout: inventory.Layout{{Area: inventory.Area(99), Size: 1}},
			errMsg: "unknown area 99",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			backing, err := inventory.NewBacking(tc.layout)
			s.Require().Error(err)
			s.Nil(backing)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *BackingTestSuite) TestAreasReturnsCopy() {
	backing, err := inventory.NewBacking(inventory.KindFurnace.Layout())
	s.Require().NoError(err)

	areas := backing.Areas()
	areas[0].Size = 100

	_, size, _ := backing.AreaRange(inventory.AreaFurnaceIngredient)
	s.Equal(1, size)
}

func (s *BackingTestSuite) TestKinds() {
	for _, kind := range inventory.Kinds() {
		s.Run(kind.String(), func() {
			s.NoError(kind.Layout().Validate())

			parsed, ok := inventory.ParseKind(kind.String())
			s.True(ok)
			s.Equal(kind, parsed)

			for _, area := range kind.InsertAreas(kind.Layout()) {
				s.True(containsArea(kind.Layout(), area), "insert area %s missing from layout", area)
			}
		})
	}

	s.Nil(inventory.KindCustom.Layout())
	custom := inventory.Layout{{Area: inventory.AreaOffhand, Size: 1}, {Area: inventory.AreaStorage, Size: 2}}
	s.Equal([]inventory.Area{inventory.AreaOffhand, inventory.AreaStorage}, inventory.KindCustom.InsertAreas(custom))
}

func (s *BackingTestSuite) TestParseArea() {
	for _, area := range inventory.Areas() {
		parsed, ok := inventory.ParseArea(area.String())
		s.True(ok)
		s.Equal(area, parsed)
	}
	_, ok := inventory.ParseArea("backpack")
	s.False(ok)
	s.Equal("area(77)", inventory.Area(77).String())
}

func containsArea(layout inventory.Layout, area inventory.Area) bool {
	for _, spec := range layout {
		if spec.Area == area {
			return true
		}
	}
	return false
}
