package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// checkAdmission decides whether incoming can enter the column. Load is the
// summed weight of non-paused items currently in the column, excluding the
// incoming item itself (relevant when unpausing an already-placed item).
// Admission succeeds when load + weight stays within the limit, or
// unconditionally when the column is unlimited. Callers must hold the
// column's lock so the load cannot change between check and write.
func (e *Engine) checkAdmission(projectID string, column types.Status, incoming *types.BacklogItem, excludeID string) error {
	limit, err := e.store.GetWIPLimit(projectID, column)
	if err != nil {
		return err
	}
	if limit.Limit == nil {
		return nil
	}

	policy, err := e.store.GetWIPPolicy(projectID)
	if err != nil {
		return err
	}

	items, err := e.store.ListColumn(projectID, column)
	if err != nil {
		return err
	}
	var load float64
	for _, it := range items {
		if it.Pause || it.ItemID == excludeID {
			continue
		}
		load += it.Weight(policy)
	}

	weight := incoming.Weight(policy)
	if load+weight > float64(*limit.Limit) {
		return &types.WIPExceededError{
			ProjectID: projectID,
			Column:    column,
			Load:      load,
			Weight:    weight,
			Limit:     *limit.Limit,
		}
	}
	return nil
}

// SetPause toggles the pause flag. Pausing removes the item from its
// column's load immediately. Unpausing re-enters it and must itself pass
// admission, under the same column lock as any transition into the column.
func (e *Engine) SetPause(itemID string, paused bool) (*types.BacklogItem, error) {
	item, err := e.store.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.Pause == paused {
		return item, nil
	}

	if !paused && item.Status.Limited() {
		lock := e.columnLock(item.ProjectID, item.Status)
		lock.Lock()
		defer lock.Unlock()

		if err := e.checkAdmission(item.ProjectID, item.Status, item, itemID); err != nil {
			return nil, err
		}
		if err := e.store.SetPause(itemID, false); err != nil {
			return nil, err
		}
		return e.store.GetItem(itemID)
	}

	if err := e.store.SetPause(itemID, paused); err != nil {
		return nil, err
	}
	return e.store.GetItem(itemID)
}
