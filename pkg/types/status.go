package types

// Status is the workflow state of a backlog item. The four statuses map
// one-to-one onto board columns.
type Status string

const (
	StatusBacklog Status = "backlog"
	StatusTodo    Status = "todo"
	StatusDoing   Status = "doing"
	StatusDone    Status = "done"
)

// columnOrder gives each status its position on the board. Transitions are
// legal only between adjacent positions.
var columnOrder = map[Status]int{
	StatusBacklog: 0,
	StatusTodo:    1,
	StatusDoing:   2,
	StatusDone:    3,
}

// Columns returns the four statuses in board order.
func Columns() []Status {
	return []Status{StatusBacklog, StatusTodo, StatusDoing, StatusDone}
}

// Valid reports whether s is one of the four defined statuses.
func (s Status) Valid() bool {
	_, ok := columnOrder[s]
	return ok
}

// Limited reports whether the column can carry a WIP limit. Backlog and
// Done are unbounded by convention.
func (s Status) Limited() bool {
	return s == StatusTodo || s == StatusDoing
}

// ParseStatus converts a string to a Status.
// Returns ErrInvalidStatus for unrecognized values.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// CanTransition reports whether moving an item from one status to another is
// a legal workflow edge. Items move one column at a time, forward or
// backward; skipping a column is never legal, and a status is not a legal
// target for itself.
func CanTransition(from, to Status) bool {
	fi, ok := columnOrder[from]
	if !ok {
		return false
	}
	ti, ok := columnOrder[to]
	if !ok {
		return false
	}
	diff := ti - fi
	return diff == 1 || diff == -1
}
