// Package board implements the kanban engine over the SQLite store:
// hierarchy management, the workflow state machine, WIP admission control,
// rank sequencing, and the board projection. The engine holds no item state
// of its own; it owns only the locks that serialize admission decisions and
// hierarchy mutations.
package board

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// columnKey identifies one (project, column) critical section.
type columnKey struct {
	projectID string
	column    types.Status
}

// Engine composes the store with the serialization the workflow needs.
// Admission-check-then-write is mutually exclusive per (project, column);
// hierarchy mutations are mutually exclusive per project.
type Engine struct {
	store *sqlite.Store

	mu       sync.Mutex
	columns  map[columnKey]*sync.Mutex
	projects map[string]*sync.Mutex
}

// New creates an Engine over an attached store.
func New(store *sqlite.Store) *Engine {
	return &Engine{
		store:    store,
		columns:  make(map[columnKey]*sync.Mutex),
		projects: make(map[string]*sync.Mutex),
	}
}

// columnLock returns the mutex serializing writes into one column.
func (e *Engine) columnLock(projectID string, column types.Status) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := columnKey{projectID: projectID, column: column}
	lock, ok := e.columns[key]
	if !ok {
		lock = &sync.Mutex{}
		e.columns[key] = lock
	}
	return lock
}

// projectLock returns the mutex serializing hierarchy mutations in one
// project.
func (e *Engine) projectLock(projectID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.projects[projectID]
	if !ok {
		lock = &sync.Mutex{}
		e.projects[projectID] = lock
	}
	return lock
}

// CreateItem validates the item, places it at the tail of the project's
// Backlog column, and stores it. Items are always created in Backlog.
func (e *Engine) CreateItem(item *types.BacklogItem) (*types.BacklogItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.ParentID != nil {
		parent, err := e.store.GetItem(*item.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent %s: %w", *item.ParentID, err)
		}
		if parent.ProjectID != item.ProjectID {
			return nil, types.ErrCrossProject
		}
	}

	// Serialize against other inserts so tail ranks stay unique.
	lock := e.columnLock(item.ProjectID, types.StatusBacklog)
	lock.Lock()
	defer lock.Unlock()

	column, err := e.store.ListColumn(item.ProjectID, types.StatusBacklog)
	if err != nil {
		return nil, err
	}
	id, err := e.store.CreateItem(item, rankAtTail(column))
	if err != nil {
		return nil, err
	}
	return e.store.GetItem(id)
}

// GetItem retrieves a single item.
func (e *Engine) GetItem(itemID string) (*types.BacklogItem, error) {
	return e.store.GetItem(itemID)
}

// UpdateItem applies a metadata patch under optimistic concurrency.
func (e *Engine) UpdateItem(itemID string, patch types.ItemPatch) (*types.BacklogItem, error) {
	return e.store.UpdateItem(itemID, patch)
}

// ListByProject lists a project's items narrowed by the filter.
func (e *Engine) ListByProject(projectID string, filter types.ItemFilter) ([]*types.BacklogItem, error) {
	return e.store.ListByProject(projectID, filter)
}

// GetWIPLimit returns a column's WIP limit.
func (e *Engine) GetWIPLimit(projectID string, column types.Status) (*types.WIPLimit, error) {
	return e.store.GetWIPLimit(projectID, column)
}

// SetWIPLimit sets or clears a column's WIP limit. Lowering a limit below
// the current load is allowed: the limit gates admission, it does not evict
// items already in the column.
func (e *Engine) SetWIPLimit(limit *types.WIPLimit) error {
	return e.store.SetWIPLimit(limit)
}

// GetWIPPolicy returns the project's weighting policy.
func (e *Engine) GetWIPPolicy(projectID string) (types.WIPPolicy, error) {
	return e.store.GetWIPPolicy(projectID)
}

// SetWIPPolicy sets the project's weighting policy.
func (e *Engine) SetWIPPolicy(projectID string, policy types.WIPPolicy) error {
	return e.store.SetWIPPolicy(projectID, policy)
}
