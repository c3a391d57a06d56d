// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForceGCReclaimsDroppedNodes(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	used := m.pool.used()
	and.Drop()
	m.ForceGC()
	require.Less(t, m.pool.used(), used)
}

func TestForceGCRemovesOnlyDeadCacheEntries(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)
	_, err = m.Apply(OpOr, x0, x1)
	require.NoError(t, err)
	require.Greater(t, m.cache.hits+m.cache.miss, int64(0))

	and.Drop()
	m.ForceGC()

	_, ok := m.cache.lookup(OpAnd.ID, m.resolve(x0), m.resolve(x1))
	require.False(t, ok)
	_, ok = m.cache.lookup(OpOr.ID, m.resolve(x0), m.resolve(x1))
	require.True(t, ok)
}
