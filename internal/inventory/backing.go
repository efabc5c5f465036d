package inventory

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// AreaSpec declares one area of a layout and its slot count
type AreaSpec struct {
	Area Area
	Size int
}

// Layout is the ordered list of areas of an inventory. Slots are allocated
// contiguously in layout order.
type Layout []AreaSpec

// Validate checks that the layout is non-empty, uses known areas at most once
// and that every area has at least one slot.
func (l Layout) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(l) == 0 {
		vb.RequiredField("Layout")
	}

	seen := make(map[Area]bool, len(l))
	for i, spec := range l {
		field := fmt.Sprintf("Layout[%d]", i)
		if !spec.Area.IsValid() {
			vb.Fieldf(field+".Area", "unknown area %d", uint8(spec.Area))
		}
		if seen[spec.Area] {
			vb.Fieldf(field+".Area", "duplicate area %s", spec.Area)
		}
		seen[spec.Area] = true
		if spec.Size <= 0 {
			vb.Field(field+".Size", "must be greater than 0")
		}
	}

	return vb.Build()
}

// Size returns the total slot count of the layout
func (l Layout) Size() int {
	total := 0
	for _, spec := range l {
		total += spec.Size
	}
	return total
}

type areaRange struct {
	offset int
	size   int
	ok     bool
}

// Backing is the flat slot array of one inventory plus the area offset
// table. The table and the slice are fixed at construction; only slot
// contents change, each under its own lock.
type Backing struct {
	id    string
	kind  Kind
	owner core.Entity
	bus   events.EventBus

	layout Layout
	ranges [areaCount]areaRange
	slots  []Slot
}

// NewBacking allocates the slots for layout
func NewBacking(layout Layout) (*Backing, error) {
	if err := layout.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid layout")
	}

	b := &Backing{
		layout: append(Layout(nil), layout...),
		slots:  make([]Slot, layout.Size()),
	}

	offset := 0
	for _, spec := range layout {
		b.ranges[spec.Area] = areaRange{offset: offset, size: spec.Size, ok: true}
		for i := 0; i < spec.Size; i++ {
			slot := &b.slots[offset+i]
			slot.backing = b
			slot.area = spec.Area
			slot.index = i
			slot.flat = offset + i
		}
		offset += spec.Size
	}

	return b, nil
}

// AreaSlice returns the slots of area. ok is false when the backing does not
// define the area; index bounds are the caller's concern.
func (b *Backing) AreaSlice(area Area) ([]Slot, bool) {
	r, ok := b.lookup(area)
	if !ok {
		return nil, false
	}
	return b.slots[r.offset : r.offset+r.size], true
}

// AreaRange returns the offset and size of area within the flat slot array
func (b *Backing) AreaRange(area Area) (offset, size int, ok bool) {
	r, ok := b.lookup(area)
	return r.offset, r.size, ok
}

// Has reports whether the backing defines area
func (b *Backing) Has(area Area) bool {
	_, ok := b.lookup(area)
	return ok
}

// Areas returns the layout the backing was built from
func (b *Backing) Areas() Layout {
	return append(Layout(nil), b.layout...)
}

// Len returns the total number of slots
func (b *Backing) Len() int {
	return len(b.slots)
}

func (b *Backing) lookup(area Area) (areaRange, bool) {
	if !area.IsValid() {
		return areaRange{}, false
	}
	r := b.ranges[area]
	return r, r.ok
}

// slot resolves (area, index) to a slot, or nil
func (b *Backing) slot(area Area, index int) *Slot {
	r, ok := b.lookup(area)
	if !ok || index < 0 || index >= r.size {
		return nil
	}
	return &b.slots[r.offset+index]
}
