// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBDDRejectsBadVarnum(t *testing.T) {
	_, err := NewBDD(0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestVariableIsCanonical(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x0again, err := m.Variable(0)
	require.NoError(t, err)
	require.Equal(t, x0.m.resolve(x0), x0again.m.resolve(x0again))
}

func TestConstantEvaluatesEverywhere(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	one, err := m.Constant(1)
	require.NoError(t, err)
	v, err := m.Evaluate(one, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestAndTruthTable(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	for a := int32(0); a <= 1; a++ {
		for b := int32(0); b <= 1; b++ {
			v, err := m.Evaluate(and, []int32{a, b})
			require.NoError(t, err)
			require.Equal(t, a&b, v)
		}
	}
}

func TestGCPreservesExternalRoots(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	before := m.GetNodeCount(x0)
	m.ForceGC()
	after, err := m.Evaluate(x0, []int32{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(1), after)
	require.Equal(t, before, m.GetNodeCount(x0))
}
