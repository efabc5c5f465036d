package inventory

import "fmt"

// Area names a logical region of an inventory
type Area uint8

// Inventory areas
const (
	AreaStorage Area = iota
	AreaCraftingOutput
	AreaCraftingInput
	AreaHelmet
	AreaChestplate
	AreaLeggings
	AreaBoots
	AreaHotbar
	AreaOffhand
	AreaFurnaceIngredient
	AreaFurnaceFuel
	AreaFurnaceOutput

	areaCount
)

var areaNames = [areaCount]string{
	AreaStorage:           "storage",
	AreaCraftingOutput:    "crafting_output",
	AreaCraftingInput:     "crafting_input",
	AreaHelmet:            "helmet",
	AreaChestplate:        "chestplate",
	AreaLeggings:          "leggings",
	AreaBoots:             "boots",
	AreaHotbar:            "hotbar",
	AreaOffhand:           "offhand",
	AreaFurnaceIngredient: "furnace_ingredient",
	AreaFurnaceFuel:       "furnace_fuel",
	AreaFurnaceOutput:     "furnace_output",
}

// String implements fmt.Stringer
func (a Area) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("area(%d)", uint8(a))
	}
	return areaNames[a]
}

// IsValid reports whether a is a known area
func (a Area) IsValid() bool {
	return a < areaCount
}

// ParseArea returns the area with the given name, e.g. "hotbar"
func ParseArea(name string) (Area, bool) {
	for a, n := range areaNames {
		if n == name {
			return Area(a), true
		}
	}
	return 0, false
}

// Areas returns every known area
func Areas() []Area {
	out := make([]Area, 0, areaCount)
	for a := Area(0); a < areaCount; a++ {
		out = append(out, a)
	}
	return out
}
