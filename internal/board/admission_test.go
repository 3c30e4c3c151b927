package board

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// setDoingLimit configures a finite WIP limit on Doing for the project.
func setDoingLimit(t *testing.T, e *Engine, projectID string, limit int) {
	t.Helper()
	require.NoError(t, e.SetWIPLimit(&types.WIPLimit{
		ProjectID: projectID,
		Column:    types.StatusDoing,
		Limit:     &limit,
	}))
}

func TestWIPAdmission(t *testing.T) {
	e := setupEngine(t)

	t.Run("denied entry reports load and limit, freed slot admits", func(t *testing.T) {
		setDoingLimit(t, e, "p1", 2)

		a := createItem(t, e, "p1", "A", nil)
		b := createItem(t, e, "p1", "B", nil)
		c := createItem(t, e, "p1", "C", nil)
		stepTo(t, e, a.ItemID, types.StatusDoing)
		stepTo(t, e, b.ItemID, types.StatusDoing)
		stepTo(t, e, c.ItemID, types.StatusTodo)

		_, err := e.Transition(c.ItemID, types.StatusDoing, nil)
		var exceeded *types.WIPExceededError
		require.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 2.0, exceeded.Load)
		assert.Equal(t, 2, exceeded.Limit)
		assert.Equal(t, types.StatusDoing, exceeded.Column)

		// Leaving the constrained column frees a slot.
		_, err = e.Transition(a.ItemID, types.StatusDone, nil)
		require.NoError(t, err)

		moved, err := e.Transition(c.ItemID, types.StatusDoing, nil)
		require.NoError(t, err)
		assert.Equal(t, types.StatusDoing, moved.Status)
	})

	t.Run("unlimited column admits freely", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			item := createItem(t, e, "p2", "Unbounded", nil)
			stepTo(t, e, item.ItemID, types.StatusDoing)
		}
		items, err := e.ListByProject("p2", types.ItemFilter{Status: statusPtr(types.StatusDoing)})
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("leaving a constrained column always succeeds", func(t *testing.T) {
		one := 1
		require.NoError(t, e.SetWIPLimit(&types.WIPLimit{ProjectID: "p3", Column: types.StatusTodo, Limit: &one}))

		item := createItem(t, e, "p3", "Lone", nil)
		stepTo(t, e, item.ItemID, types.StatusTodo)

		// The column is at its limit; moving out is still fine.
		_, err := e.Transition(item.ItemID, types.StatusDoing, nil)
		require.NoError(t, err)
	})
}

func TestPauseAffectsLoad(t *testing.T) {
	e := setupEngine(t)
	setDoingLimit(t, e, "p1", 1)

	busy := createItem(t, e, "p1", "Busy", nil)
	waiting := createItem(t, e, "p1", "Waiting", nil)
	stepTo(t, e, busy.ItemID, types.StatusDoing)
	stepTo(t, e, waiting.ItemID, types.StatusTodo)

	// Full column denies entry.
	_, err := e.Transition(waiting.ItemID, types.StatusDoing, nil)
	var exceeded *types.WIPExceededError
	require.ErrorAs(t, err, &exceeded)

	// Pausing the blocked work frees its weight immediately.
	paused, err := e.SetPause(busy.ItemID, true)
	require.NoError(t, err)
	assert.True(t, paused.Pause)

	_, err = e.Transition(waiting.ItemID, types.StatusDoing, nil)
	require.NoError(t, err)

	// Unpausing re-enters the load and must pass admission again.
	_, err = e.SetPause(busy.ItemID, false)
	require.ErrorAs(t, err, &exceeded)

	// After the column drains, unpausing succeeds.
	_, err = e.Transition(waiting.ItemID, types.StatusDone, nil)
	require.NoError(t, err)
	resumed, err := e.SetPause(busy.ItemID, false)
	require.NoError(t, err)
	assert.False(t, resumed.Pause)
}

func TestPointsPolicyWeighting(t *testing.T) {
	e := setupEngine(t)
	require.NoError(t, e.SetWIPPolicy("p1", types.WIPPolicyPoints))

	five := 5
	require.NoError(t, e.SetWIPLimit(&types.WIPLimit{ProjectID: "p1", Column: types.StatusDoing, Limit: &five}))

	three := 3
	big, err := e.CreateItem(&types.BacklogItem{ProjectID: "p1", Title: "Big", StoryPoint: &three})
	require.NoError(t, err)
	small, err := e.CreateItem(&types.BacklogItem{ProjectID: "p1", Title: "Small", StoryPoint: &three})
	require.NoError(t, err)

	stepTo(t, e, big.ItemID, types.StatusDoing)
	stepTo(t, e, small.ItemID, types.StatusTodo)

	// 3 points in the column; another 3 would exceed 5.
	_, err = e.Transition(small.ItemID, types.StatusDoing, nil)
	var exceeded *types.WIPExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 3.0, exceeded.Load)
	assert.Equal(t, 3.0, exceeded.Weight)
	assert.Equal(t, 5, exceeded.Limit)

	// A two-point item still fits.
	two := 2
	fits, err := e.CreateItem(&types.BacklogItem{ProjectID: "p1", Title: "Fits", StoryPoint: &two})
	require.NoError(t, err)
	stepTo(t, e, fits.ItemID, types.StatusDoing)
}

func TestConcurrentAdmission(t *testing.T) {
	e := setupEngine(t)
	setDoingLimit(t, e, "p1", 3)

	const contenders = 8
	ids := make([]string, contenders)
	for i := range ids {
		item := createItem(t, e, "p1", "Contender", nil)
		stepTo(t, e, item.ItemID, types.StatusTodo)
		ids[i] = item.ItemID
	}

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, results[i] = e.Transition(id, types.StatusDoing, nil)
		}(i, id)
	}
	wg.Wait()

	admitted := 0
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		var exceeded *types.WIPExceededError
		require.ErrorAs(t, err, &exceeded, "losers fail only on admission")
	}
	assert.Equal(t, 3, admitted, "the limit is never jointly overrun")

	doing, err := e.ListByProject("p1", types.ItemFilter{Status: statusPtr(types.StatusDoing)})
	require.NoError(t, err)
	assert.Len(t, doing, 3)
}
