// Package inventory implements the inventory orchestrator: creating
// inventories and moving items in and out of them
package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
)

// Service defines the interface for inventory operations
type Service interface {
	// Lifecycle
	CreateInventory(ctx context.Context, input *CreateInventoryInput) (*CreateInventoryOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	ListInventories(ctx context.Context, input *ListInventoriesInput) (*ListInventoriesOutput, error)
	DeleteInventory(ctx context.Context, input *DeleteInventoryInput) (*DeleteInventoryOutput, error)

	// Single slot access
	GetSlot(ctx context.Context, input *GetSlotInput) (*GetSlotOutput, error)
	SetSlot(ctx context.Context, input *SetSlotInput) (*SetSlotOutput, error)
	DamageItem(ctx context.Context, input *DamageItemInput) (*DamageItemOutput, error)

	// Multi slot operations
	GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error)
	TakeItem(ctx context.Context, input *TakeItemInput) (*TakeItemOutput, error)
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)
	SplitStack(ctx context.Context, input *SplitStackInput) (*SplitStackOutput, error)
	GetContents(ctx context.Context, input *GetContentsInput) (*GetContentsOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Repository  inventoryrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// EventBus is handed to every inventory created. Optional.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  inventoryrepo.Repository
	idGen idgen.Generator
	clock clock.Clock
	bus   events.EventBus
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		clock: cfg.Clock,
		bus:   cfg.EventBus,
	}, nil
}

// owner is the event source of inventories created by the service
type owner struct {
	id string
}

func (o *owner) GetID() string   { return o.id }
func (o *owner) GetType() string { return "owner" }

var _ core.Entity = (*owner)(nil)

// CreateInventory builds a new inventory and registers it
func (o *orchestrator) CreateInventory(ctx context.Context, input *CreateInventoryInput) (*CreateInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cfg := &inventory.Config{
		ID:       o.idGen.Generate(),
		Kind:     input.Kind,
		Layout:   input.Layout,
		EventBus: o.bus,
	}
	if input.OwnerID != "" {
		cfg.Owner = &owner{id: input.OwnerID}
	}

	inv, err := inventory.New(cfg)
	if err != nil {
		return nil, err
	}

	_, err = o.repo.Create(ctx, &inventoryrepo.CreateInput{
		InventoryID: inv.ID(),
		OwnerID:     input.OwnerID,
		Inventory:   inv,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register inventory")
	}

	slog.Info("created inventory",
		"inventory_id", inv.ID(),
		"owner_id", input.OwnerID,
		"kind", inv.Kind().String(),
		"slots", inv.Backing().Len(),
	)

	return &CreateInventoryOutput{Inventory: inv}, nil
}

// GetInventory returns a handle to a registered inventory
func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Get(ctx, &inventoryrepo.GetInput{InventoryID: input.InventoryID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get inventory %s", input.InventoryID)
	}

	return &GetInventoryOutput{
		Inventory: out.Inventory,
		OwnerID:   out.OwnerID,
	}, nil
}

// ListInventories returns every inventory of an owner
func (o *orchestrator) ListInventories(ctx context.Context, input *ListInventoriesInput) (*ListInventoriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.ListByOwner(ctx, &inventoryrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventories")
	}

	invs := make([]inventory.Inventory, 0, len(out.Inventories))
	for _, got := range out.Inventories {
		invs = append(invs, got.Inventory)
	}

	return &ListInventoriesOutput{Inventories: invs}, nil
}

// DeleteInventory unregisters an inventory. Handles already given out stay valid.
func (o *orchestrator) DeleteInventory(ctx context.Context, input *DeleteInventoryInput) (*DeleteInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.Delete(ctx, &inventoryrepo.DeleteInput{InventoryID: input.InventoryID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory %s", input.InventoryID)
	}

	slog.Info("deleted inventory", "inventory_id", input.InventoryID)

	return &DeleteInventoryOutput{}, nil
}

// GetSlot returns a copy of one slot's content
func (o *orchestrator) GetSlot(ctx context.Context, input *GetSlotInput) (*GetSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	out := &GetSlotOutput{}
	err = inv.Update(input.Slot.Area, input.Slot.Index, func(g *inventory.SlotGuard) error {
		if stack, ok := g.Get(); ok {
			out.Stack = &stack
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SetSlot replaces a slot's content and returns what it held
func (o *orchestrator) SetSlot(ctx context.Context, input *SetSlotInput) (*SetSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Stack != nil {
		if err := validateStack(*input.Stack); err != nil {
			return nil, err
		}
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	out := &SetSlotOutput{}
	err = inv.Update(input.Slot.Area, input.Slot.Index, func(g *inventory.SlotGuard) error {
		if prev, ok := g.Get(); ok {
			out.Previous = &prev
		}
		if input.Stack == nil {
			g.Clear()
		} else {
			g.Set(*input.Stack)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("set slot",
		"inventory_id", input.InventoryID,
		"slot", input.Slot.String(),
		"stack", stackAttr(input.Stack),
	)

	return out, nil
}

// DamageItem applies damage to the item in a slot, clearing the slot when
// the item breaks
func (o *orchestrator) DamageItem(ctx context.Context, input *DamageItemInput) (*DamageItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount == 0 {
		return nil, errors.InvalidArgument("amount must be greater than 0")
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	out := &DamageItemOutput{}
	err = inv.Update(input.Slot.Area, input.Slot.Index, func(g *inventory.SlotGuard) error {
		stack := g.Stack()
		if stack == nil {
			return errors.FailedPreconditionf("slot %s is empty", input.Slot).
				WithMeta("inventory_id", input.InventoryID)
		}
		if _, tracked := stack.DamageValue(); !tracked {
			return errors.FailedPreconditionf("%s does not take damage", stack.Item()).
				WithMeta("inventory_id", input.InventoryID).
				WithMeta("slot", input.Slot.String())
		}

		out.Broken = stack.Damage(input.Amount)
		out.Damage, _ = stack.DamageValue()
		if out.Broken {
			g.Clear()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("damaged item",
		"inventory_id", input.InventoryID,
		"slot", input.Slot.String(),
		"amount", input.Amount,
		"damage", out.Damage,
		"broken", out.Broken,
	)

	return out, nil
}

// GiveItem inserts items into the inventory's insertion areas. Existing
// stacks of the item are filled first, then empty slots, both in insertion
// order. Items that do not fit are reported as the remainder.
func (o *orchestrator) GiveItem(ctx context.Context, input *GiveItemInput) (*GiveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemCount(input.Item, input.Count); err != nil {
		return nil, err
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	refs := areaRefs(inv, inv.Kind().InsertAreas(inv.Backing().Areas()))
	guard, err := inv.LockSlots(refs...)
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	incoming := newStack(input.Item, 0)
	remaining := input.Count

	for i := 0; i < guard.Len() && remaining > 0; i++ {
		stack := guard.Slot(i).Stack()
		if stack == nil || !stack.CanStackWith(incoming) {
			continue
		}
		n := min(stack.SpaceLeft(), remaining)
		if n == 0 {
			continue
		}
		if _, err := stack.Add(n); err != nil {
			return nil, err
		}
		remaining -= n
	}

	for i := 0; i < guard.Len() && remaining > 0; i++ {
		g := guard.Slot(i)
		if !g.IsEmpty() {
			continue
		}
		n := min(input.Item.StackSize(), remaining)
		g.Set(newStack(input.Item, n))
		remaining -= n
	}

	out := &GiveItemOutput{
		Given:     input.Count - remaining,
		Remainder: remaining,
	}

	slog.Info("gave item",
		"inventory_id", input.InventoryID,
		"item", input.Item.Name(),
		"requested", input.Count,
		"given", out.Given,
		"remainder", out.Remainder,
	)

	return out, nil
}

// TakeItem removes count items of a type from anywhere in the inventory.
// Nothing is removed unless the full count is present.
func (o *orchestrator) TakeItem(ctx context.Context, input *TakeItemInput) (*TakeItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemCount(input.Item, input.Count); err != nil {
		return nil, err
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	refs := takeOrder(inv)
	guard, err := inv.LockSlots(refs...)
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	var available uint64
	for i := 0; i < guard.Len(); i++ {
		if stack := guard.Slot(i).Stack(); stack != nil && stack.Item() == input.Item {
			available += uint64(stack.Count())
		}
	}
	if available < uint64(input.Count) {
		return nil, errors.FailedPreconditionf("not enough %s: have %d, need %d", input.Item, available, input.Count).
			WithMeta("inventory_id", input.InventoryID).
			WithMeta("item", input.Item.Name()).
			WithMeta("available", available).
			WithMeta("requested", input.Count)
	}

	remaining := input.Count
	for i := 0; i < guard.Len() && remaining > 0; i++ {
		g := guard.Slot(i)
		stack := g.Stack()
		if stack == nil || stack.Item() != input.Item {
			continue
		}
		n := min(stack.Count(), remaining)
		stack.Remove(n)
		if stack.Count() == 0 {
			g.Clear()
		}
		remaining -= n
	}

	slog.Info("took item",
		"inventory_id", input.InventoryID,
		"item", input.Item.Name(),
		"count", input.Count,
	)

	return &TakeItemOutput{Taken: input.Count}, nil
}

// MoveItem moves items from one slot to another. Matching stacks are merged
// up to the stack size, an empty destination receives the items, and two
// different stacks are swapped when the whole source stack is moved.
func (o *orchestrator) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	guard, err := inv.LockSlots(input.From, input.To)
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	from, to := guard.Slot(0), guard.Slot(1)
	src := from.Stack()
	if src == nil {
		return nil, errors.FailedPreconditionf("slot %s is empty", input.From).
			WithMeta("inventory_id", input.InventoryID)
	}

	count := input.Count
	if count == 0 {
		count = src.Count()
	}
	if count > src.Count() {
		return nil, errors.FailedPreconditionf("slot %s holds %d, cannot move %d", input.From, src.Count(), count).
			WithMeta("inventory_id", input.InventoryID)
	}

	out := &MoveItemOutput{}
	dst := to.Stack()
	switch {
	case dst == nil:
		moved := *src
		moved.SetCount(count)
		to.Set(moved)
		src.Remove(count)
		out.Moved = count
	case dst.CanStackWith(*src):
		n := min(dst.SpaceLeft(), count)
		if _, err := dst.Add(n); err != nil {
			return nil, err
		}
		src.Remove(n)
		out.Moved = n
	case count == src.Count():
		a, _ := from.Get()
		b, _ := to.Get()
		from.Set(b)
		to.Set(a)
		out.Moved = count
		out.Swapped = true
	default:
		return nil, errors.FailedPreconditionf("cannot move part of %s onto %s", src.Item(), dst.Item()).
			WithMeta("inventory_id", input.InventoryID).
			WithMeta("from", input.From.String()).
			WithMeta("to", input.To.String())
	}
	if !out.Swapped && src.Count() == 0 {
		from.Clear()
	}

	slog.Info("moved item",
		"inventory_id", input.InventoryID,
		"from", input.From.String(),
		"to", input.To.String(),
		"moved", out.Moved,
		"swapped", out.Swapped,
	)

	return out, nil
}

// SplitStack moves half of a stack into an empty slot. The source keeps the
// larger half.
func (o *orchestrator) SplitStack(ctx context.Context, input *SplitStackInput) (*SplitStackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	guard, err := inv.LockSlots(input.From, input.To)
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	from, to := guard.Slot(0), guard.Slot(1)
	src := from.Stack()
	if src == nil || src.Count() < 2 {
		return nil, errors.FailedPreconditionf("slot %s has nothing to split", input.From).
			WithMeta("inventory_id", input.InventoryID)
	}
	if !to.IsEmpty() {
		return nil, errors.FailedPreconditionf("slot %s is not empty", input.To).
			WithMeta("inventory_id", input.InventoryID)
	}

	half := src.Count() / 2
	split := *src
	split.SetCount(half)
	src.Remove(half)
	to.Set(split)

	slog.Info("split stack",
		"inventory_id", input.InventoryID,
		"from", input.From.String(),
		"to", input.To.String(),
		"moved", half,
	)

	return &SplitStackOutput{Kept: src.Count(), Moved: half}, nil
}

// GetContents returns a consistent snapshot of every occupied slot
func (o *orchestrator) GetContents(ctx context.Context, input *GetContentsInput) (*GetContentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.load(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	refs := areaRefs(inv, layoutAreas(inv))
	guard, err := inv.LockSlots(refs...)
	if err != nil {
		return nil, err
	}
	defer guard.Release()

	out := &GetContentsOutput{
		InventoryID: inv.ID(),
		Kind:        inv.Kind(),
		TakenAt:     o.clock.Now(),
	}
	for i, ref := range refs {
		if stack, ok := guard.Slot(i).Get(); ok {
			out.Slots = append(out.Slots, SlotContents{Slot: ref, Stack: stack})
		}
	}

	return out, nil
}

func (o *orchestrator) load(ctx context.Context, inventoryID string) (inventory.Inventory, error) {
	out, err := o.repo.Get(ctx, &inventoryrepo.GetInput{InventoryID: inventoryID})
	if err != nil {
		return inventory.Inventory{}, errors.Wrapf(err, "failed to get inventory %s", inventoryID)
	}
	return out.Inventory, nil
}

func validateItemCount(item catalog.Item, count uint32) error {
	vb := errors.NewValidationBuilder()
	if !item.IsValid() {
		vb.Fieldf("Item", "unknown item %d", item.ID())
	}
	if count == 0 {
		vb.Field("Count", "must be greater than 0")
	}
	return vb.Build()
}

func validateStack(stack inventory.ItemStack) error {
	vb := errors.NewValidationBuilder()
	if !stack.Item().IsValid() {
		vb.Fieldf("Stack", "unknown item %d", stack.Item().ID())
	}
	if stack.Count() == 0 {
		vb.Field("Stack", "count must be greater than 0")
	}
	return vb.Build()
}

// newStack creates a stack that tracks damage when the item has durability
func newStack(item catalog.Item, count uint32) inventory.ItemStack {
	if _, ok := item.Durability(); ok {
		return inventory.NewDamagedItemStack(item, count, 0)
	}
	return inventory.NewItemStack(item, count)
}

func layoutAreas(inv inventory.Inventory) []inventory.Area {
	layout := inv.Backing().Areas()
	areas := make([]inventory.Area, 0, len(layout))
	for _, spec := range layout {
		areas = append(areas, spec.Area)
	}
	return areas
}

// takeOrder lists every slot, insertion areas first
func takeOrder(inv inventory.Inventory) []inventory.SlotRef {
	first := inv.Kind().InsertAreas(inv.Backing().Areas())
	seen := make(map[inventory.Area]bool, len(first))
	for _, area := range first {
		seen[area] = true
	}
	areas := first
	for _, area := range layoutAreas(inv) {
		if !seen[area] {
			areas = append(areas, area)
		}
	}
	return areaRefs(inv, areas)
}

func areaRefs(inv inventory.Inventory, areas []inventory.Area) []inventory.SlotRef {
	var refs []inventory.SlotRef
	for _, area := range areas {
		_, size, ok := inv.Backing().AreaRange(area)
		if !ok {
			continue
		}
		for i := 0; i < size; i++ {
			refs = append(refs, inventory.SlotRef{Area: area, Index: i})
		}
	}
	return refs
}

func stackAttr(stack *inventory.ItemStack) string {
	if stack == nil {
		return "empty"
	}
	return stack.String()
}
