package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
	orchestrator "github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
)

var (
	simWorkers int
	simRounds  int
	simKind    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run concurrent workers against one inventory",
	Long: `Start several workers that give, take and move random items in the same
inventory through the inventory service, then print the final contents and
the number of slot change events observed.

  simulate --workers 8 --rounds 500 --kind player`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := inventory.ParseKind(simKind)
		if !ok || kind == inventory.KindCustom {
			return fmt.Errorf("unknown inventory kind %q", simKind)
		}
		_, err := runSimulation(cmd.Context(), &simulationConfig{
			Workers: simWorkers,
			Rounds:  simRounds,
			Kind:    kind,
		}, cmd.OutOrStdout())
		return err
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 4, "number of concurrent workers")
	simulateCmd.Flags().IntVar(&simRounds, "rounds", 100, "operations per worker")
	simulateCmd.Flags().StringVar(&simKind, "kind", "player", "inventory kind")
}

type simulationConfig struct {
	Workers int
	Rounds  int
	Kind    inventory.Kind
}

func (c *simulationConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Workers <= 0 {
		vb.Field("Workers", "must be greater than 0")
	}
	if c.Rounds <= 0 {
		vb.Field("Rounds", "must be greater than 0")
	}
	return vb.Build()
}

type simulationResult struct {
	Gives, Takes, Moves int64
	Rejected            int64 // operations refused by the service
	Events              int64
	Contents            *orchestrator.GetContentsOutput
}

// simulationItems are stackable so moves regularly merge
var simulationItems = []catalog.Item{
	catalog.Stone,
	catalog.Dirt,
	catalog.Coal,
	catalog.Arrow,
	catalog.EnderPearl,
	catalog.Snowball,
}

func runSimulation(ctx context.Context, cfg *simulationConfig, w io.Writer) (*simulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := &simulationResult{}
	bus := events.NewBus()
	bus.SubscribeFunc(inventory.EventSlotChanged, 0, func(_ context.Context, _ events.Event) error {
		atomic.AddInt64(&result.Events, 1)
		return nil
	})

	service, err := orchestrator.NewOrchestrator(&orchestrator.Config{
		Repository:  inventoryrepo.NewInMemory(),
		IDGenerator: idgen.NewUUID("inv"),
		Clock:       clock.New(),
		EventBus:    bus,
	})
	if err != nil {
		return nil, err
	}

	created, err := service.CreateInventory(ctx, &orchestrator.CreateInventoryInput{
		OwnerID: "simulator",
		Kind:    cfg.Kind,
	})
	if err != nil {
		return nil, err
	}
	inv := created.Inventory
	refs := insertRefs(inv)

	var wg sync.WaitGroup
	errCh := make(chan error, cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for r := 0; r < cfg.Rounds; r++ {
				if err := simulateRound(ctx, service, inv.ID(), refs, result); err != nil {
					errCh <- fmt.Errorf("worker %d round %d: %w", worker, r, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}

	result.Contents, err = service.GetContents(ctx, &orchestrator.GetContentsInput{InventoryID: inv.ID()})
	if err != nil {
		return nil, err
	}

	printSimulation(w, result)
	return result, nil
}

func simulateRound(ctx context.Context, service orchestrator.Service, inventoryID string, refs []inventory.SlotRef, result *simulationResult) error {
	action, err := roll(3)
	if err != nil {
		return err
	}

	switch action {
	case 1:
		item, count, err := rollItem(16)
		if err != nil {
			return err
		}
		atomic.AddInt64(&result.Gives, 1)
		_, err = service.GiveItem(ctx, &orchestrator.GiveItemInput{InventoryID: inventoryID, Item: item, Count: count})
		return tolerate(err, result)
	case 2:
		item, count, err := rollItem(8)
		if err != nil {
			return err
		}
		atomic.AddInt64(&result.Takes, 1)
		_, err = service.TakeItem(ctx, &orchestrator.TakeItemInput{InventoryID: inventoryID, Item: item, Count: count})
		return tolerate(err, result)
	default:
		from, err := roll(len(refs))
		if err != nil {
			return err
		}
		to, err := roll(len(refs))
		if err != nil {
			return err
		}
		atomic.AddInt64(&result.Moves, 1)
		_, err = service.MoveItem(ctx, &orchestrator.MoveItemInput{
			InventoryID: inventoryID,
			From:        refs[from-1],
			To:          refs[to-1],
		})
		return tolerate(err, result)
	}
}

// tolerate counts the refusals a random workload is expected to hit
func tolerate(err error, result *simulationResult) error {
	if err == nil {
		return nil
	}
	if errors.IsFailedPrecondition(err) || errors.IsInvalidArgument(err) {
		atomic.AddInt64(&result.Rejected, 1)
		slog.Debug("operation rejected", "error", err)
		return nil
	}
	return err
}

func roll(size int) (int, error) {
	r, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create d%d roll", size)
	}
	return r.GetValue(), nil
}

func rollItem(maxCount int) (catalog.Item, uint32, error) {
	pick, err := roll(len(simulationItems))
	if err != nil {
		return catalog.Air, 0, err
	}
	count, err := roll(maxCount)
	if err != nil {
		return catalog.Air, 0, err
	}
	return simulationItems[pick-1], uint32(count), nil
}

func insertRefs(inv inventory.Inventory) []inventory.SlotRef {
	var refs []inventory.SlotRef
	for _, area := range inv.Kind().InsertAreas(inv.Backing().Areas()) {
		_, size, _ := inv.Backing().AreaRange(area)
		for i := 0; i < size; i++ {
			refs = append(refs, inventory.SlotRef{Area: area, Index: i})
		}
	}
	return refs
}

func printSimulation(w io.Writer, result *simulationResult) {
	fmt.Fprintf(w, "Inventory %s (%s)\n", result.Contents.InventoryID, result.Contents.Kind)
	fmt.Fprintf(w, "  gives: %d  takes: %d  moves: %d  rejected: %d\n",
		result.Gives, result.Takes, result.Moves, result.Rejected)
	fmt.Fprintf(w, "  slot change events: %d\n", result.Events)

	totals := make(map[catalog.Item]uint64)
	for _, slot := range result.Contents.Slots {
		fmt.Fprintf(w, "  %-14s %s\n", slot.Slot, slot.Stack)
		totals[slot.Stack.Item()] += uint64(slot.Stack.Count())
	}
	for _, item := range simulationItems {
		if totals[item] > 0 {
			fmt.Fprintf(w, "  total %-12s %d\n", item, totals[item])
		}
	}
}
