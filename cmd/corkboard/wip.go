// WIP limit commands for the corkboard CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/corkboard/pkg/types"
	"github.com/spf13/cobra"
)

var wipCmd = &cobra.Command{
	Use:   "wip",
	Short: "Manage work-in-progress limits",
}

var wipGetCmd = &cobra.Command{
	Use:   "get <project-id> <column>",
	Short: "Show the WIP limit for a column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := types.ParseStatus(args[1])
		if err != nil {
			fail("wip get", err)
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("wip get", err)
		}
		defer store.Detach()

		limit, err := engine.GetWIPLimit(args[0], column)
		if err != nil {
			fail("wip get", err)
		}

		if flagJSON {
			printJSON(limit)
		} else if limit.Limit == nil {
			fmt.Printf("%s/%s: unlimited\n", limit.ProjectID, limit.Column)
		} else {
			fmt.Printf("%s/%s: %d\n", limit.ProjectID, limit.Column, *limit.Limit)
		}
		return nil
	},
}

var wipSetCmd = &cobra.Command{
	Use:   "set <project-id> <column> <limit>",
	Short: "Set or clear the WIP limit for a column",
	Long: `Set installs a WIP limit on the todo or doing column of a project.
A limit of "none" removes the limit. Lowering a limit below the current
load is allowed; the limit gates entry only.

Example:
  corkboard wip set web doing 3
  corkboard wip set web doing none`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := types.ParseStatus(args[1])
		if err != nil {
			fail("wip set", err)
		}

		limit := &types.WIPLimit{ProjectID: args[0], Column: column}
		if args[2] != "none" {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				fail("wip set", fmt.Errorf("%w: %q (expected a number or \"none\")", types.ErrInvalidLimit, args[2]))
			}
			limit.Limit = &n
		}

		engine, store, err := openEngine()
		if err != nil {
			fail("wip set", err)
		}
		defer store.Detach()

		if err := engine.SetWIPLimit(limit); err != nil {
			fail("wip set", err)
		}

		if limit.Limit == nil {
			fmt.Printf("Removed WIP limit on %s/%s\n", args[0], column)
		} else {
			fmt.Printf("Set WIP limit on %s/%s to %d\n", args[0], column, *limit.Limit)
		}
		return nil
	},
}

var wipPolicyCmd = &cobra.Command{
	Use:   "policy <project-id> [count|points]",
	Short: "Show or set how WIP load is measured",
	Long: `Policy controls how WIP load is measured for a project: "count"
weighs every card as one, "points" weighs cards by story points (falling
back to the time estimate, then one, for unsized cards).

With no second argument the current policy is printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			fail("wip policy", err)
		}
		defer store.Detach()

		if len(args) == 1 {
			policy, err := engine.GetWIPPolicy(args[0])
			if err != nil {
				fail("wip policy", err)
			}
			fmt.Println(policy)
			return nil
		}

		policy, err := types.ParseWIPPolicy(args[1])
		if err != nil {
			fail("wip policy", err)
		}
		if err := engine.SetWIPPolicy(args[0], policy); err != nil {
			fail("wip policy", err)
		}
		fmt.Printf("Set WIP policy for %s to %s\n", args[0], policy)
		return nil
	},
}

func init() {
	wipCmd.AddCommand(wipGetCmd)
	wipCmd.AddCommand(wipSetCmd)
	wipCmd.AddCommand(wipPolicyCmd)
}
