// Reparent command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reparentTo string

var reparentCmd = &cobra.Command{
	Use:   "reparent <item-id>",
	Short: "Move an item under a new parent",
	Long: `Reparent moves an item (and implicitly its subtree) under a new parent
in the same project. Without --to the item becomes a root item. Moves
that would create a cycle are refused.

Example:
  corkboard reparent <id> --to <parent-id>
  corkboard reparent <id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("reparent", err)
		}
		defer store.Detach()

		if err := engine.Reparent(args[0], strPtr(reparentTo)); err != nil {
			fail("reparent", err)
		}

		if reparentTo == "" {
			fmt.Printf("Promoted %s to root\n", args[0])
		} else {
			fmt.Printf("Reparented %s under %s\n", args[0], reparentTo)
		}
		return nil
	},
}

func init() {
	reparentCmd.Flags().StringVar(&reparentTo, "to", "", "new parent item ID (omit to promote to root)")
}
