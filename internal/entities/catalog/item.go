// Package catalog holds the closed set of item tokens consumed by the
// inventory core.
//
// Item ids are append-only: a new item is added at the end of the table and
// existing ids never change meaning. The table mirrors data produced by the
// asset pipeline; the inventory core only compares items and reads their
// static properties.
package catalog

import "fmt"

// Item identifies one kind of item. The zero value is Air, which is never
// stored in a slot.
type Item uint16

// Known items. Order defines the id.
const (
	Air Item = iota
	Stone
	Dirt
	Cobblestone
	OakPlanks
	OakLog
	Stick
	Torch
	Coal
	IronIngot
	GoldIngot
	Diamond
	Apple
	Bread
	EnderPearl
	Snowball
	Egg
	WoodenSword
	StoneSword
	IronSword
	DiamondSword
	WoodenPickaxe
	IronPickaxe
	DiamondPickaxe
	Bow
	Arrow
	Shield
	FlintAndSteel
	Shears
	FishingRod
	IronHelmet
	IronChestplate
	IronLeggings
	IronBoots
	Elytra
)

type itemData struct {
	name       string
	stackSize  uint32
	durability uint32 // 0: not damageable
}

var items = [...]itemData{
	Air:            {name: "air", stackSize: 0},
	Stone:          {name: "stone", stackSize: 64},
	Dirt:           {name: "dirt", stackSize: 64},
	Cobblestone:    {name: "cobblestone", stackSize: 64},
	OakPlanks:      {name: "oak_planks", stackSize: 64},
	OakLog:         {name: "oak_log", stackSize: 64},
	Stick:          {name: "stick", stackSize: 64},
	Torch:          {name: "torch", stackSize: 64},
	Coal:           {name: "coal", stackSize: 64},
	IronIngot:      {name: "iron_ingot", stackSize: 64},
	GoldIngot:      {name: "gold_ingot", stackSize: 64},
	Diamond:        {name: "diamond", stackSize: 64},
	Apple:          {name: "apple", stackSize: 64},
	Bread:          {name: "bread", stackSize: 64},
	EnderPearl:     {name: "ender_pearl", stackSize: 16},
	Snowball:       {name: "snowball", stackSize: 16},
	Egg:            {name: "egg", stackSize: 16},
	WoodenSword:    {name: "wooden_sword", stackSize: 1, durability: 59},
	StoneSword:     {name: "stone_sword", stackSize: 1, durability: 131},
	IronSword:      {name: "iron_sword", stackSize: 1, durability: 250},
	DiamondSword:   {name: "diamond_sword", stackSize: 1, durability: 1561},
	WoodenPickaxe:  {name: "wooden_pickaxe", stackSize: 1, durability: 59},
	IronPickaxe:    {name: "iron_pickaxe", stackSize: 1, durability: 250},
	DiamondPickaxe: {name: "diamond_pickaxe", stackSize: 1, durability: 1561},
	Bow:            {name: "bow", stackSize: 1, durability: 384},
	Arrow:          {name: "arrow", stackSize: 64},
	Shield:         {name: "shield", stackSize: 1, durability: 336},
	FlintAndSteel:  {name: "flint_and_steel", stackSize: 1, durability: 64},
	Shears:         {name: "shears", stackSize: 1, durability: 238},
	FishingRod:     {name: "fishing_rod", stackSize: 1, durability: 64},
	IronHelmet:     {name: "iron_helmet", stackSize: 1, durability: 165},
	IronChestplate: {name: "iron_chestplate", stackSize: 1, durability: 240},
	IronLeggings:   {name: "iron_leggings", stackSize: 1, durability: 225},
	IronBoots:      {name: "iron_boots", stackSize: 1, durability: 195},
	Elytra:         {name: "elytra", stackSize: 1, durability: 432},
}

var byName = func() map[string]Item {
	m := make(map[string]Item, len(items))
	for id, data := range items {
		m[data.name] = Item(id)
	}
	return m
}()

// ItemFromID returns the item with the given id
func ItemFromID(id uint16) (Item, bool) {
	if int(id) >= len(items) {
		return Air, false
	}
	return Item(id), true
}

// ItemFromName returns the item with the given namespaced-less name, e.g. "iron_sword"
func ItemFromName(name string) (Item, bool) {
	item, ok := byName[name]
	return item, ok
}

// Items returns every known item except Air, in id order
func Items() []Item {
	out := make([]Item, 0, len(items)-1)
	for id := 1; id < len(items); id++ {
		out = append(out, Item(id))
	}
	return out
}

// ID returns the numeric id of the item
func (i Item) ID() uint16 {
	return uint16(i)
}

// IsValid reports whether the item is a known, non-air item
func (i Item) IsValid() bool {
	return i != Air && int(i) < len(items)
}

// Name returns the item's identifier name
func (i Item) Name() string {
	if int(i) >= len(items) {
		return ""
	}
	return items[i].name
}

// String implements fmt.Stringer
func (i Item) String() string {
	if int(i) >= len(items) {
		return fmt.Sprintf("item(%d)", uint16(i))
	}
	return items[i].name
}

// StackSize returns the maximum count a single stack of this item may hold
func (i Item) StackSize() uint32 {
	if int(i) >= len(items) {
		return 0
	}
	return items[i].stackSize
}

// Durability returns the damage at which the item breaks. ok is false for
// items that cannot be damaged.
func (i Item) Durability() (durability uint32, ok bool) {
	if int(i) >= len(items) || items[i].durability == 0 {
		return 0, false
	}
	return items[i].durability, true
}
