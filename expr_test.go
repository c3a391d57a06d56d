// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromExprBuildsImplication(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	root, err := m.FromExpr(BinOp(OpImplies, Var(0), Var(1)))
	require.NoError(t, err)

	v, err := m.Evaluate(root, []int32{1, 0})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
	v, err = m.Evaluate(root, []int32{0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestFromExprConst(t *testing.T) {
	m, err := NewBDD(1)
	require.NoError(t, err)
	root, err := m.FromExpr(Const(1))
	require.NoError(t, err)
	v, err := m.Evaluate(root, []int32{0})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}
