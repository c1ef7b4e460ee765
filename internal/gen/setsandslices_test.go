//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	in := []string{"a", "a", "b", "a", "c", "b"}
	out := Unique(in)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, out)
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	dd := SetSubtraction(aa, bb)
	assert.Equal(t, []string{"c", "d", "h"}, dd)
}

func TestToSet(t *testing.T) {
	s := ToSet([]string{"x", "y", "x"})
	assert.Len(t, s, 2)
	_, ok := s["x"]
	assert.True(t, ok)
	_, ok = s["z"]
	assert.False(t, ok)
}

func TestContainsN(t *testing.T) {
	sl := []string{"-1", "3", "-1", "10", "-1"}
	assert.Equal(t, 3, ContainsN(sl, "-1"))
	assert.Equal(t, 0, ContainsN(sl, "99"))
}

func TestRemoveIndex(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		out := RemoveIndex([]string{"a", "b", "c"}, 1)
		assert.Equal(t, []string{"a", "c"}, out)
	})
	t.Run("empty slice is returned unharmed", func(t *testing.T) {
		var in []int
		out := RemoveIndex(in, 0)
		assert.Empty(t, out)
	})
}

func TestFlattenSlices(t *testing.T) {
	in := [][]int{{1, 2}, {3}, {}, {4, 5}}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, FlattenSlices(in))
}

func TestChunkSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7}
	ch := ChunkSlice(in, 3)
	assert.Len(t, ch, 3)
	assert.Equal(t, []int{1, 2, 3}, ch[0])
	assert.Equal(t, []int{7}, ch[2])

	// an undersized slice yields a single chunk
	ch = ChunkSlice([]int{1, 2}, 10)
	assert.Len(t, ch, 1)
}

func TestStringMapIntoSlice(t *testing.T) {
	mp := map[string]int{"a": 1, "b": 2}
	assert.ElementsMatch(t, []int{1, 2}, StringMapIntoSlice(mp))
	assert.ElementsMatch(t, []string{"a", "b"}, StringMapKeysIntoSlice(mp))
}
