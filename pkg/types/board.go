package types

// BoardItem is a backlog item as it appears on the board, with its hierarchy
// children attached. Children are ordered by rank within their own columns.
type BoardItem struct {
	BacklogItem
	Children []*BoardItem `json:"children,omitempty"`
}

// KanbanBoard is the per-project board projection: for each column, the
// items currently in that status ordered by ascending rank. Every
// non-deleted item of the project appears in exactly one column, whatever
// its position in the hierarchy.
type KanbanBoard struct {
	ProjectID string                  `json:"project_id"`
	Columns   map[Status][]*BoardItem `json:"columns"`
}

// Column returns the ordered items for one column. Missing columns yield an
// empty slice.
func (b *KanbanBoard) Column(s Status) []*BoardItem {
	return b.Columns[s]
}

// Size returns the total number of items on the board.
func (b *KanbanBoard) Size() int {
	n := 0
	for _, items := range b.Columns {
		n += len(items)
	}
	return n
}
