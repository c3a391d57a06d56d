// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCofactorFixesVariable(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	c1, err := m.Cofactor(and, 0, 1)
	require.NoError(t, err)
	v, err := m.Evaluate(c1, []int32{1, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	c0, err := m.Cofactor(and, 0, 0)
	require.NoError(t, err)
	v, err = m.Evaluate(c0, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestTransformAppliesPointwise(t *testing.T) {
	m, err := NewHomogeneousMDD(1, 3)
	require.NoError(t, err)
	v, err := m.Variable(0)
	require.NoError(t, err)
	doubled, err := m.Transform(v, func(x int32) int32 { return 2 * x })
	require.NoError(t, err)
	for a := int32(0); a < 3; a++ {
		got, err := m.Evaluate(doubled, []int32{a})
		require.NoError(t, err)
		require.Equal(t, 2*a, got)
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	r1, err := m.Reduce(x0)
	require.NoError(t, err)
	r2, err := m.Reduce(r1)
	require.NoError(t, err)
	require.Equal(t, m.resolve(r1), m.resolve(r2))
}

func TestSatisfyCountAgreesWithLn(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	or, err := m.Apply(OpOr, x0, x1)
	require.NoError(t, err)

	count, err := m.SatisfyCount(or, 1)
	require.NoError(t, err)
	ln, err := m.SatisfyCountLn(or)
	require.NoError(t, err)

	f := new(big.Float).SetInt(count)
	got, _ := f.Float64()
	require.InDelta(t, got, math.Pow(2, ln), 1e-6)
}

func TestSatisfyOneAndSatisfyAllAgree(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	one, err := m.SatisfyOne(and, 1)
	require.NoError(t, err)
	v, err := m.Evaluate(and, one)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	all, err := m.SatisfyAll(and, 1)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for _, assignment := range all {
		v, err := m.Evaluate(and, assignment)
		require.NoError(t, err)
		require.Equal(t, int32(1), v)
	}

	count, err := m.SatisfyCount(and, 1)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(int64(len(all))), count)
}

func TestDependencySetOmitsUnusedVariables(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	deps, err := m.DependencySet(x0)
	require.NoError(t, err)
	require.Equal(t, []int32{0}, deps)
}
