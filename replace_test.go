// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceRenamesVariable(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	x0, err := m.Variable(0)
	require.NoError(t, err)

	r, err := m.NewReplacer([]int32{0}, []int32{2})
	require.NoError(t, err)
	renamed, err := m.Replace(x0, r)
	require.NoError(t, err)

	v, err := m.Evaluate(renamed, []int32{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	v, err = m.Evaluate(renamed, []int32{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestNewReplacerRejectsDuplicateSource(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	_, err = m.NewReplacer([]int32{0, 0}, []int32{1, 2})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewReplacerRejectsSourceTargetOverlap(t *testing.T) {
	m, err := NewBDD(3)
	require.NoError(t, err)
	_, err = m.NewReplacer([]int32{0, 1}, []int32{1, 2})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
