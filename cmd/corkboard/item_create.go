// Item create command for the corkboard CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var (
	createProject  string
	createTitle    string
	createType     string
	createParent   string
	createReviewer string
	createAssignee string
	createEstimate float64
	createPoints   int
	createDeadline string
)

var itemCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backlog item",
	Long: `Create adds a new item to the project backlog. New items always start
in the backlog column at the tail position.

Example:
  corkboard item create --project web --title "Login page" --type story
  corkboard item create --project web --title "Style form" --parent <story-id>`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		item := &types.BacklogItem{
			ProjectID:  createProject,
			Title:      createTitle,
			Type:       createType,
			ParentID:   strPtr(createParent),
			ReviewerID: strPtr(createReviewer),
			AssigneeID: strPtr(createAssignee),
		}
		if cmd.Flags().Changed("estimate") {
			item.EstimateValue = &createEstimate
		}
		if cmd.Flags().Changed("points") {
			item.StoryPoint = &createPoints
		}
		if createDeadline != "" {
			t, err := time.Parse(time.DateOnly, createDeadline)
			if err != nil {
				fmt.Fprintf(os.Stderr, "create: invalid deadline %q (expected YYYY-MM-DD)\n", createDeadline)
				os.Exit(exitUserError)
			}
			item.Deadline = &t
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("create", err)
		}
		defer store.Detach()

		created, err := engine.CreateItem(item)
		if err != nil {
			fail("create", err)
		}

		if flagJSON {
			printJSON(created)
		} else {
			fmt.Printf("Created %s: %s\n", created.Type, created.ItemID)
		}
		return nil
	},
}

func init() {
	itemCreateCmd.Flags().StringVar(&createProject, "project", "", "project ID (required)")
	itemCreateCmd.Flags().StringVar(&createTitle, "title", "", "item title (required)")
	itemCreateCmd.Flags().StringVar(&createType, "type", "", "item type (epic, story, task; default task)")
	itemCreateCmd.Flags().StringVar(&createParent, "parent", "", "parent item ID")
	itemCreateCmd.Flags().StringVar(&createReviewer, "reviewer", "", "reviewer ID")
	itemCreateCmd.Flags().StringVar(&createAssignee, "assignee", "", "assignee ID")
	itemCreateCmd.Flags().Float64Var(&createEstimate, "estimate", 0, "time estimate")
	itemCreateCmd.Flags().IntVar(&createPoints, "points", 0, "story points")
	itemCreateCmd.Flags().StringVar(&createDeadline, "deadline", "", "deadline (YYYY-MM-DD)")

	itemCreateCmd.MarkFlagRequired("project")
	itemCreateCmd.MarkFlagRequired("title")
}
