// Move command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var moveAfter string

var moveCmd = &cobra.Command{
	Use:   "move <item-id> <column>",
	Short: "Move an item to an adjacent column",
	Long: `Move transitions an item to an adjacent workflow column. The workflow
order is backlog, todo, doing, done; columns cannot be skipped in either
direction. Moves into todo or doing are refused when the column's WIP
limit would be exceeded.

The item lands at the tail of the target column unless --after names the
card to place it behind.

Example:
  corkboard move <id> todo
  corkboard move <id> doing --after <other-id>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := types.ParseStatus(args[1])
		if err != nil {
			fail("move", err)
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("move", err)
		}
		defer store.Detach()

		moved, err := engine.Transition(args[0], target, strPtr(moveAfter))
		if err != nil {
			fail("move", err)
		}

		if flagJSON {
			printJSON(moved)
		} else {
			fmt.Printf("Moved %s to %s\n", moved.ItemID, moved.Status)
		}
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveAfter, "after", "", "place behind this card in the target column")
}
