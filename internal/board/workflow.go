package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Transition moves an item to an adjacent column. The admission check, the
// rank assignment, and the status write form one admission unit under the
// target column's lock, so two concurrent transitions can never jointly
// overrun a WIP limit. A nil after places the item at the tail of the
// target column; otherwise it lands directly after the given item.
//
// Moving a parent never moves its children: a parent in Done can have
// children still in flight.
func (e *Engine) Transition(itemID string, target types.Status, after *string) (*types.BacklogItem, error) {
	if !target.Valid() {
		return nil, types.ErrInvalidStatus
	}
	item, err := e.store.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if !types.CanTransition(item.Status, target) {
		return nil, &types.IllegalTransitionError{From: item.Status, To: target}
	}

	lock := e.columnLock(item.ProjectID, target)
	lock.Lock()
	defer lock.Unlock()

	// Admission gates entry only; leaving a constrained column always
	// succeeds. Paused items carry no weight.
	if target.Limited() && !item.Pause {
		if err := e.checkAdmission(item.ProjectID, target, item, itemID); err != nil {
			return nil, err
		}
	}

	rank, err := e.placeRank(item.ProjectID, target, after, true)
	if err != nil {
		return nil, err
	}

	if err := e.store.SetStatusRank(itemID, item.Version, target, rank); err != nil {
		return nil, err
	}
	return e.store.GetItem(itemID)
}

// Reorder moves an item within its current column. A nil after moves it to
// the head; otherwise it lands directly after the given item. The rank in
// any previous column is forgotten; ranks are column-scoped.
func (e *Engine) Reorder(itemID string, after *string) (*types.BacklogItem, error) {
	item, err := e.store.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if after != nil && *after == itemID {
		return item, nil
	}

	// Serialize with inserts and rebalances in the same column.
	lock := e.columnLock(item.ProjectID, item.Status)
	lock.Lock()
	defer lock.Unlock()

	rank, err := e.placeRank(item.ProjectID, item.Status, after, false)
	if err != nil {
		return nil, err
	}

	// A rebalance in placeRank rewrites every rank in the column and bumps
	// every version, the moving item's included. Re-read under the lock so
	// the guarded write carries the current version.
	item, err = e.store.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if err := e.store.SetStatusRank(itemID, item.Version, item.Status, rank); err != nil {
		return nil, err
	}
	return e.store.GetItem(itemID)
}
