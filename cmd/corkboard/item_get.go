// Item get command for the corkboard CLI.
package main

import (
	"github.com/spf13/cobra"
)

var itemGetCmd = &cobra.Command{
	Use:   "get <item-id>",
	Short: "Get an item by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("get", err)
		}
		defer store.Detach()

		item, err := engine.GetItem(args[0])
		if err != nil {
			fail("get", err)
		}

		if flagJSON {
			printJSON(item)
		} else {
			printItem(item)
		}
		return nil
	},
}
