// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapAdjacentPreservesSemantics(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	x2, err := m.Variable(2)
	require.NoError(t, err)
	a, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)
	root, err := m.Apply(OpOr, a, x2)
	require.NoError(t, err)

	before := make([][]int32, 0, 8)
	values := make([]int32, 0, 8)
	assignment := make([]int32, 3)
	for mask := 0; mask < 8; mask++ {
		for i := range assignment {
			assignment[i] = int32((mask >> i) & 1)
		}
		v, err := m.Evaluate(root, assignment)
		require.NoError(t, err)
		before = append(before, append([]int32(nil), assignment...))
		values = append(values, v)
	}

	require.NoError(t, m.swapAdjacent(0))

	for i, a := range before {
		v, err := m.Evaluate(root, []int32{a[1], a[0], a[2]})
		require.NoError(t, err)
		require.Equal(t, values[i], v)
	}
}

func TestForceReorderPreservesSemantics(t *testing.T) {
	m, err := NewBDD(4)
	require.NoError(t, err)
	var vars []*Node
	for i := int32(0); i < 4; i++ {
		v, err := m.Variable(i)
		require.NoError(t, err)
		vars = append(vars, v)
	}
	root, err := m.TreeFold(OpXor, vars)
	require.NoError(t, err)

	assignment := make([]int32, 4)
	before := make([]int32, 16)
	for mask := 0; mask < 16; mask++ {
		for i := range assignment {
			assignment[i] = int32((mask >> i) & 1)
		}
		v, err := m.Evaluate(root, assignment)
		require.NoError(t, err)
		before[mask] = v
	}

	require.NoError(t, m.ForceReorder())

	for mask := 0; mask < 16; mask++ {
		for i := range assignment {
			assignment[i] = int32((mask >> i) & 1)
		}
		v, err := m.Evaluate(root, assignment)
		require.NoError(t, err)
		require.Equal(t, before[mask], v)
	}
}

func TestSwapAdjacentRejectsHeterogeneousPair(t *testing.T) {
	m, err := NewMDD([]int32{2, 3})
	require.NoError(t, err)
	require.ErrorIs(t, m.swapAdjacent(0), ErrPrecondViolation)
}
