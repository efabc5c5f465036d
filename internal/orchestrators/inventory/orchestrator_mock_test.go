package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
	orchestrator "github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/rpg-inventory/internal/testutils"
	"github.com/KirkDiggler/rpg-inventory/internal/testutils/mocks"
)

type OrchestratorMockTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *inventorymock.MockRepository
	service  orchestrator.Service
	ctx      context.Context
}

func TestOrchestratorMockSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorMockTestSuite))
}

func (s *OrchestratorMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = inventorymock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.service, err = orchestrator.NewOrchestrator(&orchestrator.Config{
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("test"),
		Clock:       clock.New(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorMockTestSuite) TestCreateInventoryRegistersHandle() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *inventoryrepo.CreateInput) (*inventoryrepo.CreateOutput, error) {
			s.Equal("test_1", input.InventoryID)
			s.Equal("player_1", input.OwnerID)
			s.Equal("test_1", input.Inventory.ID())
			s.Equal(inventory.KindChest, input.Inventory.Kind())
			return &inventoryrepo.CreateOutput{InventoryID: input.InventoryID}, nil
		})

	out, err := s.service.CreateInventory(s.ctx, &orchestrator.CreateInventoryInput{
		OwnerID: "player_1",
		Kind:    inventory.KindChest,
	})
	s.Require().NoError(err)
	s.Equal(27, out.Inventory.Backing().Len())
}

func (s *OrchestratorMockTestSuite) TestCreateInventoryRepositoryError() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExistsf("inventory test_1 already exists"))

	_, err := s.service.CreateInventory(s.ctx, &orchestrator.CreateInventoryInput{Kind: inventory.KindHopper})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), "failed to register inventory")
}

func (s *OrchestratorMockTestSuite) TestOperationsPropagateLookupErrors() {
	testCases := []struct {
		name  string
		repo  error
		check func(error) bool
		call  func() error
	}{
		{
			name:  "give not found",
			repo:  errors.NotFound("inventory missing not found"),
			check: errors.IsNotFound,
			call: func() error {
				_, err := s.service.GiveItem(s.ctx, &orchestrator.GiveItemInput{InventoryID: "missing", Item: catalog.Stone, Count: 1})
				return err
			},
		},
		{
			name:  "take unavailable",
			repo:  errors.Unavailablef("registry offline"),
			check: errors.IsUnavailable,
			call: func() error {
				_, err := s.service.TakeItem(s.ctx, &orchestrator.TakeItemInput{InventoryID: "missing", Item: catalog.Stone, Count: 1})
				return err
			},
		},
		{
			name:  "contents internal",
			repo:  errors.Internal("boom"),
			check: errors.IsInternal,
			call: func() error {
				_, err := s.service.GetContents(s.ctx, &orchestrator.GetContentsInput{InventoryID: "missing"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mocks.ExpectInventoryLookupError(s.ctx, s.mockRepo, "missing", tc.repo)

			err := tc.call()
			s.Require().Error(err)
			s.True(tc.check(err))
			s.Contains(err.Error(), "failed to get inventory missing")
		})
	}
}

func (s *OrchestratorMockTestSuite) TestValidationSkipsRepository() {
	// no repository expectations: invalid input must fail first
	_, err := s.service.GiveItem(s.ctx, &orchestrator.GiveItemInput{InventoryID: "inv", Item: catalog.Stone})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.DamageItem(s.ctx, &orchestrator.DamageItemInput{InventoryID: "inv"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorMockTestSuite) TestGiveItemUsesRepositoryHandle() {
	inv := testutils.CreateTestInventory(s.T(), inventory.KindHopper, nil)
	testutils.FillSlots(s.T(), inv, map[inventory.SlotRef]inventory.ItemStack{
		{Area: inventory.AreaStorage, Index: 1}: inventory.NewItemStack(catalog.Coal, 60),
	})
	mocks.ExpectInventoryLookup(s.ctx, s.mockRepo, inv, testutils.TestOwnerID)

	out, err := s.service.GiveItem(s.ctx, &orchestrator.GiveItemInput{
		InventoryID: testutils.TestInventoryID,
		Item:        catalog.Coal,
		Count:       10,
	})
	s.Require().NoError(err)
	s.Equal(uint32(10), out.Given)

	merged, ok := testutils.SlotContent(s.T(), inv, inventory.SlotRef{Area: inventory.AreaStorage, Index: 1})
	s.Require().True(ok)
	s.Equal(uint32(64), merged.Count())

	rest, ok := testutils.SlotContent(s.T(), inv, inventory.SlotRef{Area: inventory.AreaStorage, Index: 0})
	s.Require().True(ok)
	s.Equal(uint32(6), rest.Count())
}
