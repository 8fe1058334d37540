package addresstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRankDisjointIntervals(t *testing.T) {
	types := All()
	for rank := 0; rank <= 35; rank++ {
		matches := 0
		for _, typ := range types {
			if rank >= typ.MinRank && rank <= typ.MaxRank {
				matches++
			}
		}
		require.LessOrEqualf(t, matches, 1, "rank %d matched %d address types, want at most 1", rank, matches)

		got, ok := FromRank(rank)
		if matches == 1 {
			require.Truef(t, ok, "FromRank(%d) = not found, want a match", rank)
			assert.GreaterOrEqual(t, rank, got.MinRank)
			assert.LessOrEqual(t, rank, got.MaxRank)
		} else {
			assert.Falsef(t, ok, "FromRank(%d) = %+v, want not found", rank, got)
		}
	}
}

func TestFromRankBoundaries(t *testing.T) {
	cases := []struct {
		rank int
		want string
		ok   bool
	}{
		{29, "house", true},
		{30, "house", true},
		{28, "street", true},
		{4, "country", true},
		{3, "", false},
		{31, "", false},
		{0, "", false},
	}
	for _, c := range cases {
		got, ok := FromRank(c.rank)
		assert.Equal(t, c.ok, ok)
		if ok {
			assert.Equal(t, c.want, got.Name)
		}
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	types := All()
	require.Len(t, names, len(types))
	for i, typ := range types {
		assert.Equal(t, typ.Name, names[i])
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("house"))
	assert.False(t, IsValidName("planet"))
}
