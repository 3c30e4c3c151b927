// Package integration tests the board engine through the SQLite store. These
// tests verify full end-to-end flows: item lifecycle across the workflow,
// WIP admission, hierarchy operations, and board assembly.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/internal/board"
	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// newTestEngine creates an engine backed by a store attached to a temp
// directory. The store is detached when the test ends.
func newTestEngine(t *testing.T) *board.Engine {
	t.Helper()
	store := sqlite.NewStore()
	err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Detach() })
	return board.New(store)
}

// newAttachedStore attaches a fresh store to dir without scheduling cleanup,
// for tests that detach and reattach explicitly.
func newAttachedStore(t *testing.T, dir string) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore()
	err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	return store
}

func newEngineFor(store *sqlite.Store) *board.Engine {
	return board.New(store)
}

// mustCreate creates an item and fails the test on error.
func mustCreate(t *testing.T, engine *board.Engine, item *types.BacklogItem) *types.BacklogItem {
	t.Helper()
	created, err := engine.CreateItem(item)
	require.NoError(t, err)
	return created
}

// advanceTo walks an item column by column until it reaches target.
func advanceTo(t *testing.T, engine *board.Engine, itemID string, target types.Status) *types.BacklogItem {
	t.Helper()
	next := map[types.Status]types.Status{
		types.StatusBacklog: types.StatusTodo,
		types.StatusTodo:    types.StatusDoing,
		types.StatusDoing:   types.StatusDone,
	}
	item, err := engine.GetItem(itemID)
	require.NoError(t, err)
	for item.Status != target {
		item, err = engine.Transition(itemID, next[item.Status], nil)
		require.NoError(t, err)
	}
	return item
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
