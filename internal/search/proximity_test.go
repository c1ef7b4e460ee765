//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXWordsCheckFinds(t *testing.T) {
	bf := regexp.MustCompile("sought")
	sf := regexp.MustCompile(`^(?P<head>.*?)anchor(?P<tail>.*?)$`)

	t.Run("near hit inside the window", func(t *testing.T) {
		p := KVPair{K: 7, V: "w1 w2 sought w3 anchor w4"}
		assert.Equal(t, 7, XWordsCheckFinds(p, bf, sf, 3, false))
	})
	t.Run("near miss outside the window", func(t *testing.T) {
		p := KVPair{K: 7, V: "sought w1 w2 w3 w4 w5 anchor w6"}
		assert.Equal(t, -1, XWordsCheckFinds(p, bf, sf, 2, false))
	})
	t.Run("no proximate term at all", func(t *testing.T) {
		p := KVPair{K: 7, V: "w1 w2 w3 anchor w4"}
		assert.Equal(t, -1, XWordsCheckFinds(p, bf, sf, 3, false))
	})
	t.Run("not-near inverts the verdict", func(t *testing.T) {
		near := KVPair{K: 7, V: "w1 w2 sought w3 anchor w4"}
		assert.Equal(t, -1, XWordsCheckFinds(near, bf, sf, 3, true))

		far := KVPair{K: 9, V: "sought w1 w2 w3 w4 w5 anchor w6"}
		assert.Equal(t, 9, XWordsCheckFinds(far, bf, sf, 2, true))
	})
}

func TestIterativeProxWordsMatching(t *testing.T) {
	t.Run("doubled search term recalculates the window", func(t *testing.T) {
		// w3 sits within range of neither copy and has to go
		tail := IterativeProxWordsMatching("w1 w2 w3 w4 w5 zzz yyy t1 t2", "zzz yyy", 2)
		assert.Equal(t, []string{"w1", "w2", "w4", "w5", "zzz yyy", "t1", "t2"}, tail)
	})
	t.Run("short gaps keep everything", func(t *testing.T) {
		tail := IterativeProxWordsMatching("a b zzz c", "zzz", 5)
		assert.Equal(t, []string{"a", "b", "zzz", "c"}, tail)
	})
}
