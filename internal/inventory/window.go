package inventory

import (
	"fmt"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// WindowSection is one area of one inventory shown in a window
type WindowSection struct {
	Inventory Inventory
	Area      Area
}

type windowSection struct {
	inv    Inventory
	area   Area
	offset int
	size   int
}

// Window maps the flat slot numbering a client sees onto the areas of one or
// more inventories. Sections are numbered consecutively in the order given.
// A window never locks more than one slot at a time.
type Window struct {
	sections []windowSection
	length   int
}

// NewWindow builds a window from sections. Each section's area must exist in
// its inventory and no (inventory, area) pair may appear twice.
func NewWindow(sections ...WindowSection) (*Window, error) {
	vb := errors.NewValidationBuilder()
	if len(sections) == 0 {
		vb.RequiredField("Sections")
	}

	w := &Window{}
	for i, section := range sections {
		field := fmt.Sprintf("Sections[%d]", i)
		if section.Inventory.IsZero() {
			vb.Field(field+".Inventory", "is required")
			continue
		}
		_, size, ok := section.Inventory.Backing().AreaRange(section.Area)
		if !ok {
			vb.Fieldf(field+".Area", "area %s not in inventory %s", section.Area, section.Inventory.ID())
			continue
		}
		for _, existing := range w.sections {
			if existing.inv.SameBacking(section.Inventory) && existing.area == section.Area {
				vb.Fieldf(field+".Area", "duplicate area %s", section.Area)
			}
		}
		w.sections = append(w.sections, windowSection{
			inv:    section.Inventory,
			area:   section.Area,
			offset: w.length,
			size:   size,
		})
		w.length += size
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid window")
	}
	return w, nil
}

// PlayerWindow shows every area of a player inventory in layout order
func PlayerWindow(player Inventory) (*Window, error) {
	if player.IsZero() {
		return nil, errors.InvalidArgument("player inventory is required")
	}
	var sections []WindowSection
	for _, spec := range player.Backing().Areas() {
		sections = append(sections, WindowSection{Inventory: player, Area: spec.Area})
	}
	return NewWindow(sections...)
}

// ContainerWindow shows every area of container followed by the player's
// storage and hotbar.
func ContainerWindow(container, player Inventory) (*Window, error) {
	if container.IsZero() || player.IsZero() {
		return nil, errors.InvalidArgument("container and player inventories are required")
	}
	var sections []WindowSection
	for _, spec := range container.Backing().Areas() {
		sections = append(sections, WindowSection{Inventory: container, Area: spec.Area})
	}
	sections = append(sections,
		WindowSection{Inventory: player, Area: AreaStorage},
		WindowSection{Inventory: player, Area: AreaHotbar},
	)
	return NewWindow(sections...)
}

// Len returns the number of window slots
func (w *Window) Len() int {
	return w.length
}

// Locate resolves a window slot number
func (w *Window) Locate(index int) (Inventory, SlotRef, bool) {
	if index < 0 || index >= w.length {
		return Inventory{}, SlotRef{}, false
	}
	for _, section := range w.sections {
		if index < section.offset+section.size {
			return section.inv, SlotRef{Area: section.area, Index: index - section.offset}, true
		}
	}
	return Inventory{}, SlotRef{}, false
}

// IndexOf returns the window slot number of a slot of inv
func (w *Window) IndexOf(inv Inventory, ref SlotRef) (int, bool) {
	for _, section := range w.sections {
		if section.area != ref.Area || !section.inv.SameBacking(inv) {
			continue
		}
		if ref.Index < 0 || ref.Index >= section.size {
			return 0, false
		}
		return section.offset + ref.Index, true
	}
	return 0, false
}

// Item locks the slot behind a window slot number
func (w *Window) Item(index int) (*SlotGuard, bool) {
	inv, ref, ok := w.Locate(index)
	if !ok {
		return nil, false
	}
	return inv.Item(ref.Area, ref.Index)
}
