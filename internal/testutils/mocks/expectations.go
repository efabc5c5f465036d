// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory/mock"
)

// ExpectInventoryLookup sets up a repository Get that returns a handle to inv
func ExpectInventoryLookup(ctx context.Context, mockRepo *inventorymock.MockRepository, inv inventory.Inventory, ownerID string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, &inventoryrepo.GetInput{InventoryID: inv.ID()}).
		Return(&inventoryrepo.GetOutput{
			InventoryID: inv.ID(),
			OwnerID:     ownerID,
			Inventory:   inv.NewHandle(),
		}, nil)
}

// ExpectInventoryLookupError sets up a repository Get that fails with err
func ExpectInventoryLookupError(ctx context.Context, mockRepo *inventorymock.MockRepository, inventoryID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, &inventoryrepo.GetInput{InventoryID: inventoryID}).
		Return(nil, err)
}
