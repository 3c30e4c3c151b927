package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func TestWIPLimits(t *testing.T) {
	s := setupStore(t)

	t.Run("unconfigured column is unlimited", func(t *testing.T) {
		limit, err := s.GetWIPLimit("p1", types.StatusDoing)
		require.NoError(t, err)
		assert.Nil(t, limit.Limit)
	})

	t.Run("set and read back", func(t *testing.T) {
		three := 3
		require.NoError(t, s.SetWIPLimit(&types.WIPLimit{ProjectID: "p1", Column: types.StatusDoing, Limit: &three}))

		limit, err := s.GetWIPLimit("p1", types.StatusDoing)
		require.NoError(t, err)
		require.NotNil(t, limit.Limit)
		assert.Equal(t, 3, *limit.Limit)
	})

	t.Run("reset to unlimited keeps the row", func(t *testing.T) {
		require.NoError(t, s.SetWIPLimit(&types.WIPLimit{ProjectID: "p1", Column: types.StatusDoing}))

		limit, err := s.GetWIPLimit("p1", types.StatusDoing)
		require.NoError(t, err)
		assert.Nil(t, limit.Limit)
	})

	t.Run("only todo and doing can be limited", func(t *testing.T) {
		one := 1
		err := s.SetWIPLimit(&types.WIPLimit{ProjectID: "p1", Column: types.StatusBacklog, Limit: &one})
		assert.ErrorIs(t, err, types.ErrInvalidColumn)

		_, err = s.GetWIPLimit("p1", types.StatusDone)
		assert.ErrorIs(t, err, types.ErrInvalidColumn)
	})

	t.Run("limits are per project and column", func(t *testing.T) {
		two := 2
		require.NoError(t, s.SetWIPLimit(&types.WIPLimit{ProjectID: "p2", Column: types.StatusTodo, Limit: &two}))

		limit, err := s.GetWIPLimit("p2", types.StatusDoing)
		require.NoError(t, err)
		assert.Nil(t, limit.Limit)

		limit, err = s.GetWIPLimit("p1", types.StatusTodo)
		require.NoError(t, err)
		assert.Nil(t, limit.Limit)
	})
}

func TestWIPPolicy(t *testing.T) {
	s := setupStore(t)

	policy, err := s.GetWIPPolicy("p1")
	require.NoError(t, err)
	assert.Equal(t, types.WIPPolicyCount, policy)

	require.NoError(t, s.SetWIPPolicy("p1", types.WIPPolicyPoints))

	policy, err = s.GetWIPPolicy("p1")
	require.NoError(t, err)
	assert.Equal(t, types.WIPPolicyPoints, policy)

	assert.ErrorIs(t, s.SetWIPPolicy("p1", "hours"), types.ErrInvalidPolicy)
	_, err = s.GetWIPPolicy("")
	assert.ErrorIs(t, err, types.ErrValidation)
}
