// Board command for the corkboard CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var boardDepth int

var boardCmd = &cobra.Command{
	Use:   "board <project-id>",
	Short: "Show the kanban board for a project",
	Long: `Board renders the full kanban view of a project: every column in
workflow order, cards in rank order, with children nested under their
parents. Each card appears exactly once, in its own column.

The --depth flag bounds how many child levels are attached under each
card; zero or a negative value attaches the full subtree. The default
comes from board_depth in config.yaml.

Example:
  corkboard board web
  corkboard board web --depth 0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("board", err)
		}
		defer store.Detach()

		depth := configBoardDepth
		if cmd.Flags().Changed("depth") {
			depth = boardDepth
		}

		kanban, err := engine.Board(args[0], depth)
		if err != nil {
			fail("board", err)
		}

		if flagJSON {
			printJSON(kanban)
			return nil
		}

		for _, column := range types.Columns() {
			entries := kanban.Column(column)
			fmt.Printf("== %s (%d) ==\n", strings.ToUpper(string(column)), len(entries))
			for _, entry := range entries {
				printBoardItem(entry, 1)
			}
		}
		return nil
	},
}

// printBoardItem renders a card and its attached children, indented by level.
func printBoardItem(entry *types.BoardItem, level int) {
	indent := strings.Repeat("  ", level)
	label := entry.Title
	if entry.Pause {
		label += " (paused)"
	}
	fmt.Printf("%s- %s  [%s] %s\n", indent, entry.ItemID, entry.Type, label)
	for _, child := range entry.Children {
		printBoardItem(child, level+1)
	}
}

func init() {
	boardCmd.Flags().IntVar(&boardDepth, "depth", defaultBoardDepth, "child levels to attach (0 or less: full subtree)")
}
