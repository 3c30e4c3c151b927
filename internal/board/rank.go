package board

import (
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Ranks are fractional keys: inserting between two neighbors takes their
// midpoint, so a single insert never renumbers the column. When repeated
// splitting exhausts the gap between neighbors, the whole column is
// rewritten to evenly spaced multiples of rankStep and the placement is
// recomputed.
const (
	rankStep   = 1024.0
	minRankGap = 1e-6
)

// rankAtTail returns a rank after the last item of the column.
func rankAtTail(column []*types.BacklogItem) float64 {
	if len(column) == 0 {
		return rankStep
	}
	return column[len(column)-1].Rank + rankStep
}

// rankAtHead returns a rank before the first item of the column.
func rankAtHead(column []*types.BacklogItem) float64 {
	if len(column) == 0 {
		return rankStep
	}
	return column[0].Rank - rankStep
}

// rankAfter returns a rank placing an item directly after afterID. The
// second result is false when the neighboring gap is exhausted and the
// column must be rebalanced first.
func rankAfter(column []*types.BacklogItem, afterID string) (float64, bool, error) {
	for i, it := range column {
		if it.ItemID != afterID {
			continue
		}
		if i == len(column)-1 {
			return it.Rank + rankStep, true, nil
		}
		next := column[i+1]
		gap := next.Rank - it.Rank
		if gap <= minRankGap {
			return 0, false, nil
		}
		return it.Rank + gap/2, true, nil
	}
	return 0, false, fmt.Errorf("after item %s: %w", afterID, types.ErrNotFound)
}

// placeRank computes the rank for an item entering or moving within a
// column. A nil after places at the tail when tailDefault is true,
// otherwise at the head. The moving item itself may appear in the column;
// callers placing after it get a fresh midpoint like for any other
// predecessor. Must be called under the column's lock: on gap exhaustion
// the column is rebalanced in place before the rank is computed.
func (e *Engine) placeRank(projectID string, column types.Status, after *string, tailDefault bool) (float64, error) {
	items, err := e.store.ListColumn(projectID, column)
	if err != nil {
		return 0, err
	}

	if after == nil {
		if tailDefault {
			return rankAtTail(items), nil
		}
		return rankAtHead(items), nil
	}

	rank, ok, err := rankAfter(items, *after)
	if err != nil {
		return 0, err
	}
	if ok {
		return rank, nil
	}

	// Gap exhausted: rewrite the column to even spacing and retry.
	items, err = e.store.RebalanceColumn(projectID, column, rankStep)
	if err != nil {
		return 0, err
	}
	rank, ok, err = rankAfter(items, *after)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("rank gap exhausted after rebalance in %s/%s", projectID, column)
	}
	return rank, nil
}
