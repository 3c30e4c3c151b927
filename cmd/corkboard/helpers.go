// Shared helpers for corkboard CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mesh-intelligence/corkboard/internal/board"
	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// openEngine resolves the data directory, attaches a SQLite store, and wraps
// it in a board engine. The caller must defer store.Detach().
func openEngine() (*board.Engine, *sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:    types.BackendSQLite,
		DataDir:    dataDir,
		BoardDepth: configBoardDepth,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	return board.New(store), store, nil
}

// fail prints the error and exits with a code reflecting whether the failure
// is the caller's fault or a system fault.
func fail(prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// isUserError reports whether err stems from bad input or request state
// rather than a storage or system failure.
func isUserError(err error) bool {
	var conflict *types.ConflictError
	var illegal *types.IllegalTransitionError
	var wip *types.WIPExceededError
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrInvalidStatus),
		errors.Is(err, types.ErrInvalidType),
		errors.Is(err, types.ErrCycle),
		errors.Is(err, types.ErrCrossProject),
		errors.Is(err, types.ErrHasChildren),
		errors.Is(err, types.ErrInvalidDeletePolicy),
		errors.Is(err, types.ErrInvalidColumn),
		errors.Is(err, types.ErrInvalidLimit),
		errors.Is(err, types.ErrInvalidPolicy):
		return true
	case errors.As(err, &conflict), errors.As(err, &illegal), errors.As(err, &wip):
		return true
	}
	return false
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printItem writes a one-line human-readable summary of an item.
func printItem(item *types.BacklogItem) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s/%s]  %s", item.ItemID, item.Type, item.Status, item.Title)
	if item.AssigneeID != nil {
		fmt.Fprintf(&b, "  @%s", *item.AssigneeID)
	}
	if item.StoryPoint != nil {
		fmt.Fprintf(&b, "  %dpt", *item.StoryPoint)
	}
	if item.Deadline != nil {
		fmt.Fprintf(&b, "  due %s", item.Deadline.Format(time.DateOnly))
	}
	if item.Pause {
		b.WriteString("  (paused)")
	}
	fmt.Println(b.String())
}

// strPtr returns a pointer to s, or nil when s is empty.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
