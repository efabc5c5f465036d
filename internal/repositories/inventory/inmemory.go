package inventory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

const errInventoryIDEmpty = "inventory ID cannot be empty"

type entry struct {
	ownerID string
	inv     inventory.Inventory
}

// InMemoryRepository implements Repository with a map guarded by a RWMutex.
// The map lock only covers registration; slot access never takes it.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entry
}

// NewInMemory creates an empty registry
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]entry),
	}
}

// Create registers an inventory handle
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InventoryID == "" {
		return nil, errors.InvalidArgument(errInventoryIDEmpty)
	}
	if input.Inventory.IsZero() {
		return nil, errors.InvalidArgument("inventory handle is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.InventoryID]; exists {
		return nil, errors.AlreadyExistsf("inventory %s already exists", input.InventoryID).
			WithMeta("inventory_id", input.InventoryID)
	}

	r.store[input.InventoryID] = entry{
		ownerID: input.OwnerID,
		inv:     input.Inventory.NewHandle(),
	}

	slog.DebugContext(ctx, "registered inventory",
		"inventory_id", input.InventoryID,
		"owner_id", input.OwnerID,
	)

	return &CreateOutput{InventoryID: input.InventoryID}, nil
}

// Get returns a new handle to a registered inventory
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InventoryID == "" {
		return nil, errors.InvalidArgument(errInventoryIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.store[input.InventoryID]
	if !exists {
		return nil, errors.NotFoundf("inventory %s not found", input.InventoryID).
			WithMeta("inventory_id", input.InventoryID)
	}

	return &GetOutput{
		InventoryID: input.InventoryID,
		OwnerID:     e.ownerID,
		Inventory:   e.inv.NewHandle(),
	}, nil
}

// ListByOwner returns every inventory registered for an owner
func (r *InMemoryRepository) ListByOwner(ctx context.Context, input *ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &ListByOwnerOutput{}
	for id, e := range r.store {
		if e.ownerID != input.OwnerID {
			continue
		}
		out.Inventories = append(out.Inventories, &GetOutput{
			InventoryID: id,
			OwnerID:     e.ownerID,
			Inventory:   e.inv.NewHandle(),
		})
	}
	sort.Slice(out.Inventories, func(i, j int) bool {
		return out.Inventories[i].InventoryID < out.Inventories[j].InventoryID
	})

	return out, nil
}

// Delete removes an inventory from the registry
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InventoryID == "" {
		return nil, errors.InvalidArgument(errInventoryIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.InventoryID]; !exists {
		return nil, errors.NotFoundf("inventory %s not found", input.InventoryID).
			WithMeta("inventory_id", input.InventoryID)
	}
	delete(r.store, input.InventoryID)

	return &DeleteOutput{}, nil
}
