package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func TestBoard(t *testing.T) {
	e := setupEngine(t)

	backlog := createItem(t, e, "p1", "In backlog", nil)
	todo := createItem(t, e, "p1", "In todo", nil)
	doing := createItem(t, e, "p1", "In doing", nil)
	done := createItem(t, e, "p1", "In done", nil)
	stepTo(t, e, todo.ItemID, types.StatusTodo)
	stepTo(t, e, doing.ItemID, types.StatusDoing)
	stepTo(t, e, done.ItemID, types.StatusDone)

	board, err := e.Board("p1", 1)
	require.NoError(t, err)

	t.Run("each item appears once in its current column", func(t *testing.T) {
		assert.Equal(t, 4, board.Size())

		want := map[types.Status]string{
			types.StatusBacklog: backlog.ItemID,
			types.StatusTodo:    todo.ItemID,
			types.StatusDoing:   doing.ItemID,
			types.StatusDone:    done.ItemID,
		}
		for status, id := range want {
			col := board.Column(status)
			require.Len(t, col, 1, "column %s", status)
			assert.Equal(t, id, col[0].ItemID)
		}
	})

	t.Run("columns are ordered by ascending rank", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			createItem(t, e, "p1", "Filler", nil)
		}
		board, err := e.Board("p1", 1)
		require.NoError(t, err)

		col := board.Column(types.StatusBacklog)
		require.Len(t, col, 4)
		for i := 1; i < len(col); i++ {
			assert.Greater(t, col[i].Rank, col[i-1].Rank)
		}
	})
}

func TestBoardHierarchyAttachment(t *testing.T) {
	e := setupEngine(t)

	root := createItem(t, e, "p1", "Epic", nil)
	child := createItem(t, e, "p1", "Story", &root.ItemID)
	grand := createItem(t, e, "p1", "Task", &child.ItemID)

	t.Run("depth one attaches direct children only", func(t *testing.T) {
		board, err := e.Board("p1", 1)
		require.NoError(t, err)

		col := board.Column(types.StatusBacklog)
		require.Len(t, col, 3, "children still hold their own column slots")

		rootEntry := findEntry(t, col, root.ItemID)
		require.Len(t, rootEntry.Children, 1)
		assert.Equal(t, child.ItemID, rootEntry.Children[0].ItemID)
		assert.Empty(t, rootEntry.Children[0].Children)
	})

	t.Run("full subtree when depth is unbounded", func(t *testing.T) {
		board, err := e.Board("p1", 0)
		require.NoError(t, err)

		rootEntry := findEntry(t, board.Column(types.StatusBacklog), root.ItemID)
		require.Len(t, rootEntry.Children, 1)
		require.Len(t, rootEntry.Children[0].Children, 1)
		assert.Equal(t, grand.ItemID, rootEntry.Children[0].Children[0].ItemID)
	})

	t.Run("children in another column stay attached", func(t *testing.T) {
		stepTo(t, e, child.ItemID, types.StatusTodo)

		board, err := e.Board("p1", 1)
		require.NoError(t, err)

		rootEntry := findEntry(t, board.Column(types.StatusBacklog), root.ItemID)
		require.Len(t, rootEntry.Children, 1)
		assert.Equal(t, types.StatusTodo, rootEntry.Children[0].Status)

		// And the child occupies its own slot in Todo.
		findEntry(t, board.Column(types.StatusTodo), child.ItemID)
	})
}

func TestBoardEmptyProject(t *testing.T) {
	e := setupEngine(t)

	board, err := e.Board("ghost", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, board.Size())
	for _, status := range types.Columns() {
		assert.NotNil(t, board.Column(status))
		assert.Empty(t, board.Column(status))
	}
}

// findEntry locates an item in a column or fails the test.
func findEntry(t *testing.T, col []*types.BoardItem, id string) *types.BoardItem {
	t.Helper()
	for _, entry := range col {
		if entry.ItemID == id {
			return entry
		}
	}
	t.Fatalf("item %s not found in column", id)
	return nil
}
