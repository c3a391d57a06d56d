// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDPLDBasicOnAndGate(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	d, err := m.DPLD(and, 0, VarChange{From: 0, To: 1}, DPLDBasic(0, 1))
	require.NoError(t, err)

	// Flipping x0 from 0 to 1 grows the AND's value from 0 to 1 exactly
	// when x1 is already 1.
	v, err := m.Evaluate(d, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	v, err = m.Evaluate(d, []int32{0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestDPLDType2MatchesAnyChange(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	xor, err := m.Apply(OpXor, x0, x1)
	require.NoError(t, err)

	inc, err := m.DPLD(xor, 0, VarChange{From: 0, To: 1}, DPLDType2Increase())
	require.NoError(t, err)
	dec, err := m.DPLD(xor, 0, VarChange{From: 0, To: 1}, DPLDType2Decrease())
	require.NoError(t, err)
	d, err := m.Apply(OpOr, inc, dec)
	require.NoError(t, err)

	// XOR always flips when one input changes, for any value of the
	// other input, in one direction or the other.
	v0, err := m.Evaluate(d, []int32{0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(1), v0)
	v1, err := m.Evaluate(d, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v1)
}

func TestDPLDType1IncreaseAndType3Threshold(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)
	x1, err := m.Variable(1)
	require.NoError(t, err)
	and, err := m.Apply(OpAnd, x0, x1)
	require.NoError(t, err)

	// Flipping x0 from 0 to 1 only takes AND from exactly 0 to something
	// above 0 when x1 is already 1.
	d1, err := m.DPLD(and, 0, VarChange{From: 0, To: 1}, DPLDType1Increase(0))
	require.NoError(t, err)
	v, err := m.Evaluate(d1, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
	v, err = m.Evaluate(d1, []int32{0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)

	// The same transition crosses the threshold j=1 upward under the
	// same condition.
	d3, err := m.DPLD(and, 0, VarChange{From: 0, To: 1}, DPLDType3Increase(1))
	require.NoError(t, err)
	v, err = m.Evaluate(d3, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}
