package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Print the slot layout of every inventory kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLayouts(cmd.OutOrStdout())
	},
}

func printLayouts(w io.Writer) error {
	for _, kind := range inventory.Kinds() {
		layout := kind.Layout()
		if layout == nil {
			continue
		}
		backing, err := inventory.NewBacking(layout)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s (%d slots)\n", kind, backing.Len())
		for _, spec := range layout {
			offset, size, _ := backing.AreaRange(spec.Area)
			fmt.Fprintf(w, "  %-20s offset %3d  size %3d\n", spec.Area, offset, size)
		}
		fmt.Fprintf(w, "  insert order: %v\n", kind.InsertAreas(layout))
	}
	return nil
}
