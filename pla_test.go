// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPLABuildsAndOfTwoLiterals(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	root, err := m.FromPLA(strings.NewReader("11 1\n"))
	require.NoError(t, err)

	v, err := m.Evaluate(root, []int32{1, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
	v, err = m.Evaluate(root, []int32{1, 0})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestFromPLADontCareAndComments(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	root, err := m.FromPLA(strings.NewReader("# a term that ignores the second bit\n1- 1\n"))
	require.NoError(t, err)

	v, err := m.Evaluate(root, []int32{1, 0})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
	v, err = m.Evaluate(root, []int32{1, 1})
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
	v, err = m.Evaluate(root, []int32{0, 1})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestFromPLARejectsWrongArity(t *testing.T) {
	m, err := NewBDD(2)
	require.NoError(t, err)
	_, err = m.FromPLA(strings.NewReader("111 1\n"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
