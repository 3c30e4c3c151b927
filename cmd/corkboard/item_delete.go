// Item delete command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var deleteCascadePolicy string

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete an item",
	Long: `Delete removes an item. Items with children are refused unless a
--children policy is given:

  detach   promote children to root items, then delete
  cascade  delete the item and its whole subtree

Example:
  corkboard item delete <id>
  corkboard item delete <id> --children cascade`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := types.ParseDeletePolicy(deleteCascadePolicy)
		if err != nil {
			fail("delete", err)
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("delete", err)
		}
		defer store.Detach()

		if err := engine.DeleteItem(args[0], policy); err != nil {
			fail("delete", err)
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	itemDeleteCmd.Flags().StringVar(&deleteCascadePolicy, "children", "", "policy for children: detach or cascade")
}
