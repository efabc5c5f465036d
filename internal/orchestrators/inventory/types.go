package inventory

import (
	"time"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

// CreateInventoryInput defines the request for creating an inventory
type CreateInventoryInput struct {
	OwnerID string
	Kind    inventory.Kind
	// Layout is only used with inventory.KindCustom
	Layout inventory.Layout
}

// CreateInventoryOutput defines the response for creating an inventory
type CreateInventoryOutput struct {
	Inventory inventory.Inventory
}

// GetInventoryInput defines the request for getting an inventory
type GetInventoryInput struct {
	InventoryID string
}

// GetInventoryOutput defines the response for getting an inventory
type GetInventoryOutput struct {
	Inventory inventory.Inventory
	OwnerID   string
}

// ListInventoriesInput defines the request for listing an owner's inventories
type ListInventoriesInput struct {
	OwnerID string
}

// ListInventoriesOutput defines the response for listing an owner's inventories
type ListInventoriesOutput struct {
	Inventories []inventory.Inventory
}

// DeleteInventoryInput defines the request for deleting an inventory
type DeleteInventoryInput struct {
	InventoryID string
}

// DeleteInventoryOutput defines the response for deleting an inventory
type DeleteInventoryOutput struct{}

// GetSlotInput defines the request for reading one slot
type GetSlotInput struct {
	InventoryID string
	Slot        inventory.SlotRef
}

// GetSlotOutput defines the response for reading one slot
type GetSlotOutput struct {
	Stack *inventory.ItemStack // nil when the slot is empty
}

// SetSlotInput defines the request for replacing a slot's content
type SetSlotInput struct {
	InventoryID string
	Slot        inventory.SlotRef
	Stack       *inventory.ItemStack // nil clears the slot
}

// SetSlotOutput defines the response for replacing a slot's content
type SetSlotOutput struct {
	Previous *inventory.ItemStack
}

// GiveItemInput defines the request for inserting items without naming a slot
type GiveItemInput struct {
	InventoryID string
	Item        catalog.Item
	Count       uint32
}

// GiveItemOutput defines the response for inserting items
type GiveItemOutput struct {
	Given     uint32
	Remainder uint32 // items that did not fit
}

// TakeItemInput defines the request for removing items of one type
type TakeItemInput struct {
	InventoryID string
	Item        catalog.Item
	Count       uint32
}

// TakeItemOutput defines the response for removing items
type TakeItemOutput struct {
	Taken uint32
}

// MoveItemInput defines the request for moving items between two slots
type MoveItemInput struct {
	InventoryID string
	From        inventory.SlotRef
	To          inventory.SlotRef
	Count       uint32 // 0 moves the whole stack
}

// MoveItemOutput defines the response for moving items
type MoveItemOutput struct {
	Moved   uint32
	Swapped bool
}

// SplitStackInput defines the request for splitting a stack in half
type SplitStackInput struct {
	InventoryID string
	From        inventory.SlotRef
	To          inventory.SlotRef
}

// SplitStackOutput defines the response for splitting a stack
type SplitStackOutput struct {
	Kept  uint32
	Moved uint32
}

// DamageItemInput defines the request for damaging the item in a slot
type DamageItemInput struct {
	InventoryID string
	Slot        inventory.SlotRef
	Amount      uint32
}

// DamageItemOutput defines the response for damaging an item
type DamageItemOutput struct {
	Damage uint32
	Broken bool // the slot was cleared
}

// GetContentsInput defines the request for a snapshot of an inventory
type GetContentsInput struct {
	InventoryID string
}

// SlotContents is one occupied slot in a snapshot
type SlotContents struct {
	Slot  inventory.SlotRef
	Stack inventory.ItemStack
}

// GetContentsOutput defines the response for a snapshot of an inventory
type GetContentsOutput struct {
	InventoryID string
	Kind        inventory.Kind
	Slots       []SlotContents // occupied slots in backing order
	TakenAt     time.Time
}
