// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeFoldMatchesLeftFold(t *testing.T) {
	m, err := NewBDD(4)
	require.NoError(t, err)
	var vars []*Node
	for i := int32(0); i < 4; i++ {
		v, err := m.Variable(i)
		require.NoError(t, err)
		vars = append(vars, v)
	}
	left, err := m.LeftFold(OpOr, vars)
	require.NoError(t, err)
	tree, err := m.TreeFold(OpOr, vars)
	require.NoError(t, err)

	assignment := make([]int32, 4)
	for mask := 0; mask < 16; mask++ {
		for i := range assignment {
			assignment[i] = int32((mask >> i) & 1)
		}
		lv, err := m.Evaluate(left, assignment)
		require.NoError(t, err)
		tv, err := m.Evaluate(tree, assignment)
		require.NoError(t, err)
		require.Equal(t, lv, tv)
	}
}

func TestApplyAbsorbingShortcut(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	zero, err := m.Constant(0)
	require.NoError(t, err)
	r, err := m.Apply(OpAnd, x0, zero)
	require.NoError(t, err)
	require.Equal(t, m.resolve(zero), m.resolve(r))
}

func TestApplyMaxBoundedRejectsHeterogeneous(t *testing.T) {
	m, err := NewMDD([]int32{2, 3})
	require.NoError(t, err)
	a, err := m.Variable(0)
	require.NoError(t, err)
	b, err := m.Variable(1)
	require.NoError(t, err)
	_, err = m.Apply(OpMaxBounded(2), a, b)
	require.ErrorIs(t, err, ErrPrecondViolation)
}
