package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Board assembles the per-project board projection: every non-deleted item
// grouped into its current column, ordered by ascending rank, with
// hierarchy children attached to each entry. The items are read in a single
// query, so the projection is a consistent snapshot: an in-flight
// transition is either fully visible or not at all, never an item in two
// columns.
//
// depth bounds child attachment: 1 attaches direct children, 2 their
// children too, and zero or negative the full subtree.
func (e *Engine) Board(projectID string, depth int) (*types.KanbanBoard, error) {
	items, err := e.store.ListByProject(projectID, types.ItemFilter{})
	if err != nil {
		return nil, err
	}

	// ListByProject orders by (status, rank), so per-parent child slices
	// inherit rank order.
	childrenOf := make(map[string][]*types.BacklogItem)
	for _, it := range items {
		if it.ParentID != nil {
			childrenOf[*it.ParentID] = append(childrenOf[*it.ParentID], it)
		}
	}

	board := &types.KanbanBoard{
		ProjectID: projectID,
		Columns:   make(map[types.Status][]*types.BoardItem, 4),
	}
	for _, status := range types.Columns() {
		board.Columns[status] = []*types.BoardItem{}
	}
	levels := depth
	if depth <= 0 {
		levels = -1 // unlimited
	}
	for _, it := range items {
		node := buildNode(it, childrenOf, levels, map[string]bool{it.ItemID: true})
		board.Columns[it.Status] = append(board.Columns[it.Status], node)
	}
	return board, nil
}

// buildNode copies an item into a BoardItem and attaches the given number
// of child levels, -1 meaning all of them. The visited set keeps the
// recursion finite should the stored hierarchy ever contain a cycle.
func buildNode(item *types.BacklogItem, childrenOf map[string][]*types.BacklogItem, levels int, visited map[string]bool) *types.BoardItem {
	node := &types.BoardItem{BacklogItem: *item}
	if levels == 0 {
		return node
	}
	next := levels - 1
	if levels < 0 {
		next = -1
	}
	for _, child := range childrenOf[item.ItemID] {
		if visited[child.ItemID] {
			continue
		}
		visited[child.ItemID] = true
		node.Children = append(node.Children, buildNode(child, childrenOf, next, visited))
	}
	return node
}
