// Item update command for the corkboard CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var (
	updateVersion  int
	updateTitle    string
	updateType     string
	updateReviewer string
	updateAssignee string
	updateEstimate float64
	updatePoints   int
	updateDeadline string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update item fields",
	Long: `Update modifies descriptive fields of an item. The --version flag must
carry the version read before editing; a stale version is rejected so
concurrent edits cannot silently overwrite each other.

Passing an empty string to --reviewer, --assignee, or --deadline clears
the field.

Example:
  corkboard item update <id> --version 3 --title "New title"
  corkboard item update <id> --version 3 --assignee ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := types.ItemPatch{BaseVersion: updateVersion}
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("type") {
			patch.Type = &updateType
		}
		if cmd.Flags().Changed("reviewer") {
			patch.ReviewerID = &updateReviewer
		}
		if cmd.Flags().Changed("assignee") {
			patch.AssigneeID = &updateAssignee
		}
		if cmd.Flags().Changed("estimate") {
			patch.EstimateValue = &updateEstimate
		}
		if cmd.Flags().Changed("points") {
			patch.StoryPoint = &updatePoints
		}
		if cmd.Flags().Changed("deadline") {
			if updateDeadline == "" {
				// Zero time clears the deadline.
				patch.Deadline = &time.Time{}
			} else {
				t, err := time.Parse(time.DateOnly, updateDeadline)
				if err != nil {
					fmt.Fprintf(os.Stderr, "update: invalid deadline %q (expected YYYY-MM-DD)\n", updateDeadline)
					os.Exit(exitUserError)
				}
				patch.Deadline = &t
			}
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("update", err)
		}
		defer store.Detach()

		updated, err := engine.UpdateItem(args[0], patch)
		if err != nil {
			fail("update", err)
		}

		if flagJSON {
			printJSON(updated)
		} else {
			fmt.Printf("Updated %s (version %d)\n", updated.ItemID, updated.Version)
		}
		return nil
	},
}

func init() {
	itemUpdateCmd.Flags().IntVar(&updateVersion, "version", 0, "version the edit is based on (required)")
	itemUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	itemUpdateCmd.Flags().StringVar(&updateType, "type", "", "new type (epic, story, task)")
	itemUpdateCmd.Flags().StringVar(&updateReviewer, "reviewer", "", "new reviewer (empty clears)")
	itemUpdateCmd.Flags().StringVar(&updateAssignee, "assignee", "", "new assignee (empty clears)")
	itemUpdateCmd.Flags().Float64Var(&updateEstimate, "estimate", 0, "new time estimate")
	itemUpdateCmd.Flags().IntVar(&updatePoints, "points", 0, "new story points")
	itemUpdateCmd.Flags().StringVar(&updateDeadline, "deadline", "", "new deadline YYYY-MM-DD (empty clears)")

	itemUpdateCmd.MarkFlagRequired("version")
}
