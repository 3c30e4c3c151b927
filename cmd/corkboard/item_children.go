// Item children command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var childrenRecursive bool

var itemChildrenCmd = &cobra.Command{
	Use:   "children <item-id>",
	Short: "List an item's children",
	Long: `Children lists the direct children of an item in rank order. With
--recursive the whole subtree is listed depth-first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("children", err)
		}
		defer store.Detach()

		var items []*types.BacklogItem
		if childrenRecursive {
			items, err = engine.Descendants(args[0])
		} else {
			items, err = engine.Children(args[0])
		}
		if err != nil {
			fail("children", err)
		}

		if flagJSON {
			printJSON(items)
			return nil
		}
		if len(items) == 0 {
			fmt.Println("No children")
			return nil
		}
		for _, item := range items {
			printItem(item)
		}
		return nil
	},
}

func init() {
	itemChildrenCmd.Flags().BoolVar(&childrenRecursive, "recursive", false, "include all descendants")
}
