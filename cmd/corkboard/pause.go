// Pause and resume commands for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause <item-id>",
	Short: "Pause an item",
	Long: `Pause marks an item as paused. Paused items keep their column and
position but stop counting against the column's WIP limit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPause(args[0], true)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <item-id>",
	Short: "Resume a paused item",
	Long: `Resume clears an item's paused flag. Resuming an item in a limited
column counts it against the WIP limit again, and is refused when that
would exceed the limit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPause(args[0], false)
	},
}

func setPause(itemID string, paused bool) error {
	engine, store, err := openEngine()
	if err != nil {
		fail("pause", err)
	}
	defer store.Detach()

	item, err := engine.SetPause(itemID, paused)
	if err != nil {
		fail("pause", err)
	}

	if flagJSON {
		printJSON(item)
	} else if paused {
		fmt.Printf("Paused %s\n", item.ItemID)
	} else {
		fmt.Printf("Resumed %s\n", item.ItemID)
	}
	return nil
}
