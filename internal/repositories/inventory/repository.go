// Package inventory provides the registry of live inventory handles
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

// Repository tracks the inventories that are currently loaded. It hands out
// handles; the slots themselves are shared, never copied.
type Repository interface {
	// Create registers a new inventory handle
	// Returns errors.InvalidArgument for a missing id or zero handle
	// Returns errors.AlreadyExists if the id is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get returns a new handle to a registered inventory
	// Returns errors.NotFound if the id is unknown
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListByOwner returns handles for every inventory of an owner, ordered by id
	ListByOwner(ctx context.Context, input *ListByOwnerInput) (*ListByOwnerOutput, error)

	// Delete drops the registry's handle. Outstanding handles keep working.
	// Returns errors.NotFound if the id is unknown
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the request for registering an inventory
type CreateInput struct {
	InventoryID string
	OwnerID     string
	Inventory   inventory.Inventory
}

// CreateOutput defines the response for registering an inventory
type CreateOutput struct {
	InventoryID string
}

// GetInput defines the request for retrieving an inventory
type GetInput struct {
	InventoryID string
}

// GetOutput defines the response for retrieving an inventory
type GetOutput struct {
	InventoryID string
	OwnerID     string
	Inventory   inventory.Inventory
}

// ListByOwnerInput defines the request for listing an owner's inventories
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the response for listing an owner's inventories
type ListByOwnerOutput struct {
	Inventories []*GetOutput
}

// DeleteInput defines the request for removing an inventory
type DeleteInput struct {
	InventoryID string
}

// DeleteOutput defines the response for removing an inventory
type DeleteOutput struct{}
