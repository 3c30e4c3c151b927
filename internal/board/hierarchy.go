package board

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Reparent moves an item under a new parent, or to the root when
// newParentID is nil. The ancestor chain of the new parent is walked before
// any write: if the item appears in it the call fails with ErrCycle and the
// hierarchy is untouched. The new parent must belong to the same project.
// Reparents within a project are serialized so two concurrent calls cannot
// assemble a cycle between them.
func (e *Engine) Reparent(itemID string, newParentID *string) error {
	item, err := e.store.GetItem(itemID)
	if err != nil {
		return err
	}

	lock := e.projectLock(item.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	if newParentID == nil {
		return e.store.SetParent(itemID, nil)
	}
	if *newParentID == itemID {
		return types.ErrCycle
	}

	parent, err := e.store.GetItem(*newParentID)
	if err != nil {
		return fmt.Errorf("parent %s: %w", *newParentID, err)
	}
	if parent.ProjectID != item.ProjectID {
		return types.ErrCrossProject
	}

	// Walk from the new parent to the root. Seeing the item means it is an
	// ancestor of its proposed parent. The visited set terminates the walk
	// even on an already-corrupt chain.
	visited := map[string]bool{parent.ItemID: true}
	cur := parent
	for cur.ParentID != nil {
		ancestorID := *cur.ParentID
		if ancestorID == itemID {
			return types.ErrCycle
		}
		if visited[ancestorID] {
			return fmt.Errorf("ancestor chain of %s already contains a cycle at %s", *newParentID, ancestorID)
		}
		visited[ancestorID] = true
		if cur, err = e.store.GetItem(ancestorID); err != nil {
			return fmt.Errorf("ancestor %s: %w", ancestorID, err)
		}
	}

	return e.store.SetParent(itemID, newParentID)
}

// Children returns an item's direct children.
func (e *Engine) Children(itemID string) ([]*types.BacklogItem, error) {
	if _, err := e.store.GetItem(itemID); err != nil {
		return nil, err
	}
	return e.store.ListChildren(itemID)
}

// Descendants returns an item's full subtree in depth-first preorder,
// recomputed per call. The visited guard keeps the walk finite even if the
// stored hierarchy were ever corrupted into a cycle.
func (e *Engine) Descendants(itemID string) ([]*types.BacklogItem, error) {
	if _, err := e.store.GetItem(itemID); err != nil {
		return nil, err
	}

	var out []*types.BacklogItem
	visited := map[string]bool{itemID: true}

	var walk func(id string) error
	walk = func(id string) error {
		children, err := e.store.ListChildren(id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if visited[child.ItemID] {
				continue
			}
			visited[child.ItemID] = true
			out = append(out, child)
			if err := walk(child.ItemID); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(itemID); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteItem removes an item. Items with children require an explicit
// policy: DeleteDetachChildren promotes the children to roots,
// DeleteCascade removes the whole subtree leaves first in one transaction.
// Without a policy, deletion of a parent fails with ErrHasChildren.
func (e *Engine) DeleteItem(itemID string, policy types.DeletePolicy) error {
	item, err := e.store.GetItem(itemID)
	if err != nil {
		return err
	}

	lock := e.projectLock(item.ProjectID)
	lock.Lock()
	defer lock.Unlock()

	switch policy {
	case types.DeletePolicyNone:
		children, err := e.store.ListChildren(itemID)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return fmt.Errorf("item %s: %w", itemID, types.ErrHasChildren)
		}
		return e.store.DeleteItem(itemID)

	case types.DeleteDetachChildren:
		return e.store.DetachAndDelete(itemID)

	case types.DeleteCascade:
		descendants, err := e.Descendants(itemID)
		if err != nil {
			return err
		}
		// Reversed preorder deletes leaves before their parents.
		ids := make([]string, 0, len(descendants)+1)
		for i := len(descendants) - 1; i >= 0; i-- {
			ids = append(ids, descendants[i].ItemID)
		}
		ids = append(ids, itemID)
		return e.store.DeleteItems(ids)

	default:
		return fmt.Errorf("%w: %q", types.ErrInvalidDeletePolicy, policy)
	}
}
