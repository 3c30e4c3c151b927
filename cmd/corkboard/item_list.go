// Item list command for the corkboard CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var (
	listProject  string
	listStatus   string
	listAssignee string
	listType     string
	listParent   string
	listRoots    bool
	listLimit    int
	listOffset   int
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in a project",
	Long: `List queries items in a project with optional filters. Filters are
ANDed together. Results are ordered by column, then rank.

Example:
  corkboard item list --project web
  corkboard item list --project web --status doing --assignee ada
  corkboard item list --project web --roots`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := types.ItemFilter{
			AssigneeID: strPtr(listAssignee),
			Type:       strPtr(listType),
			Limit:      listLimit,
			Offset:     listOffset,
		}
		if listStatus != "" {
			status, err := types.ParseStatus(listStatus)
			if err != nil {
				fail("list", err)
			}
			filter.Status = &status
		}
		if listRoots {
			// Empty parent filter selects root items only.
			empty := ""
			filter.ParentID = &empty
		} else if listParent != "" {
			filter.ParentID = &listParent
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("list", err)
		}
		defer store.Detach()

		items, err := engine.ListByProject(listProject, filter)
		if err != nil {
			fail("list", err)
		}

		if flagJSON {
			printJSON(items)
			return nil
		}
		if len(items) == 0 {
			fmt.Println("No items found")
			return nil
		}
		for _, item := range items {
			printItem(item)
		}
		return nil
	},
}

func init() {
	itemListCmd.Flags().StringVar(&listProject, "project", "", "project ID (required)")
	itemListCmd.Flags().StringVar(&listStatus, "status", "", "filter by column (backlog, todo, doing, done)")
	itemListCmd.Flags().StringVar(&listAssignee, "assignee", "", "filter by assignee")
	itemListCmd.Flags().StringVar(&listType, "type", "", "filter by type (epic, story, task)")
	itemListCmd.Flags().StringVar(&listParent, "parent", "", "filter by parent item ID")
	itemListCmd.Flags().BoolVar(&listRoots, "roots", false, "only root items (no parent)")
	itemListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	itemListCmd.Flags().IntVar(&listOffset, "offset", 0, "number of results to skip")

	itemListCmd.MarkFlagRequired("project")
}
