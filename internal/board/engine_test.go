package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// setupEngine creates an engine over a store attached to a temp directory.
func setupEngine(t *testing.T) *Engine {
	t.Helper()
	s := sqlite.NewStore()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, s.Attach(config))
	t.Cleanup(func() { s.Detach() })
	return New(s)
}

// createItem adds a backlog item and fails the test on error.
func createItem(t *testing.T, e *Engine, projectID, title string, parentID *string) *types.BacklogItem {
	t.Helper()
	item, err := e.CreateItem(&types.BacklogItem{
		ProjectID: projectID,
		Title:     title,
		ParentID:  parentID,
	})
	require.NoError(t, err)
	return item
}

// stepTo walks an item along adjacent columns until it reaches target.
func stepTo(t *testing.T, e *Engine, itemID string, target types.Status) *types.BacklogItem {
	t.Helper()
	path := map[types.Status][]types.Status{
		types.StatusBacklog: {},
		types.StatusTodo:    {types.StatusTodo},
		types.StatusDoing:   {types.StatusTodo, types.StatusDoing},
		types.StatusDone:    {types.StatusTodo, types.StatusDoing, types.StatusDone},
	}
	var item *types.BacklogItem
	var err error
	for _, step := range path[target] {
		item, err = e.Transition(itemID, step, nil)
		require.NoError(t, err)
	}
	if item == nil {
		item, err = e.GetItem(itemID)
		require.NoError(t, err)
	}
	return item
}

func TestEngineCreateItem(t *testing.T) {
	e := setupEngine(t)

	t.Run("items are created at the backlog tail", func(t *testing.T) {
		first := createItem(t, e, "p1", "First", nil)
		second := createItem(t, e, "p1", "Second", nil)

		assert.Equal(t, types.StatusBacklog, first.Status)
		assert.Equal(t, types.StatusBacklog, second.Status)
		assert.Less(t, first.Rank, second.Rank)
	})

	t.Run("parent must exist", func(t *testing.T) {
		missing := "no-such-item"
		_, err := e.CreateItem(&types.BacklogItem{ProjectID: "p1", Title: "Orphan", ParentID: &missing})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("parent must share the project", func(t *testing.T) {
		other := createItem(t, e, "p2", "Other project root", nil)
		_, err := e.CreateItem(&types.BacklogItem{ProjectID: "p1", Title: "Stray", ParentID: &other.ItemID})
		assert.ErrorIs(t, err, types.ErrCrossProject)
	})
}

func TestEngineUpdateAndList(t *testing.T) {
	e := setupEngine(t)
	item := createItem(t, e, "p1", "Tweak me", nil)

	title := "Tweaked"
	updated, err := e.UpdateItem(item.ItemID, types.ItemPatch{BaseVersion: item.Version, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Tweaked", updated.Title)

	items, err := e.ListByProject("p1", types.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tweaked", items[0].Title)
}
