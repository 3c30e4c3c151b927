// Reorder command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderAfter string

var reorderCmd = &cobra.Command{
	Use:   "reorder <item-id>",
	Short: "Reposition an item within its column",
	Long: `Reorder moves an item within its current column. Without --after the
item moves to the head of the column; with --after it is placed directly
behind the named card.

Example:
  corkboard reorder <id>
  corkboard reorder <id> --after <other-id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("reorder", err)
		}
		defer store.Detach()

		moved, err := engine.Reorder(args[0], strPtr(reorderAfter))
		if err != nil {
			fail("reorder", err)
		}

		if flagJSON {
			printJSON(moved)
		} else {
			fmt.Printf("Reordered %s\n", moved.ItemID)
		}
		return nil
	},
}

func init() {
	reorderCmd.Flags().StringVar(&reorderAfter, "after", "", "place behind this card (default: head of column)")
}
