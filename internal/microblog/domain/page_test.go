package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageRequestNormalize(t *testing.T) {
	require.Equal(t, PageRequest{Page: 1, PerPage: 25}, PageRequest{}.Normalize(0))
	require.Equal(t, PageRequest{Page: 1, PerPage: 7}, PageRequest{Page: -3}.Normalize(7))
	require.Equal(t, PageRequest{Page: 2, PerPage: MaxPerPage}, PageRequest{Page: 2, PerPage: 500}.Normalize(7))

	huge := PageRequest{Page: math.MaxInt, PerPage: MaxPerPage}.Normalize(7)
	require.Equal(t, MaxPage, huge.Page)
	require.Positive(t, huge.Offset())
}
