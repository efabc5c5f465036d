package inventory

import "fmt"

// Kind is a predefined inventory layout
type Kind uint8

// Inventory kinds
const (
	KindCustom Kind = iota
	KindPlayer
	KindChest
	KindLargeChest
	KindCraftingTable
	KindFurnace
	KindHopper
)

var kindNames = map[Kind]string{
	KindCustom:        "custom",
	KindPlayer:        "player",
	KindChest:         "chest",
	KindLargeChest:    "large_chest",
	KindCraftingTable: "crafting_table",
	KindFurnace:       "furnace",
	KindHopper:        "hopper",
}

var kindLayouts = map[Kind]Layout{
	KindPlayer: {
		{Area: AreaCraftingOutput, Size: 1},
		{Area: AreaCraftingInput, Size: 4},
		{Area: AreaHelmet, Size: 1},
		{Area: AreaChestplate, Size: 1},
		{Area: AreaLeggings, Size: 1},
		{Area: AreaBoots, Size: 1},
		{Area: AreaStorage, Size: 27},
		{Area: AreaHotbar, Size: 9},
		{Area: AreaOffhand, Size: 1},
	},
	KindChest:      {{Area: AreaStorage, Size: 27}},
	KindLargeChest: {{Area: AreaStorage, Size: 54}},
	KindCraftingTable: {
		{Area: AreaCraftingOutput, Size: 1},
		{Area: AreaCraftingInput, Size: 9},
	},
	KindFurnace: {
		{Area: AreaFurnaceIngredient, Size: 1},
		{Area: AreaFurnaceFuel, Size: 1},
		{Area: AreaFurnaceOutput, Size: 1},
	},
	KindHopper: {{Area: AreaStorage, Size: 5}},
}

// insertion order used when items are handed to an inventory without a slot
var kindInsertAreas = map[Kind][]Area{
	KindPlayer:        {AreaHotbar, AreaStorage},
	KindChest:         {AreaStorage},
	KindLargeChest:    {AreaStorage},
	KindCraftingTable: {AreaCraftingInput},
	KindFurnace:       {AreaFurnaceIngredient},
	KindHopper:        {AreaStorage},
}

// Kinds returns every predefined kind
func Kinds() []Kind {
	return []Kind{KindPlayer, KindChest, KindLargeChest, KindCraftingTable, KindFurnace, KindHopper}
}

// ParseKind returns the kind with the given name, e.g. "chest"
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindCustom, false
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Layout returns a copy of the kind's layout; nil for KindCustom
func (k Kind) Layout() Layout {
	layout, ok := kindLayouts[k]
	if !ok {
		return nil
	}
	return append(Layout(nil), layout...)
}

// InsertAreas returns the areas, in order, that receive items given to an
// inventory of this kind without naming a slot. Custom layouts insert into
// every area in layout order.
func (k Kind) InsertAreas(layout Layout) []Area {
	if areas, ok := kindInsertAreas[k]; ok {
		return append([]Area(nil), areas...)
	}
	out := make([]Area, 0, len(layout))
	for _, spec := range layout {
		out = append(out, spec.Area)
	}
	return out
}
