//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

func TestPickLeastCommonTermGating(t *testing.T) {
	t.Run("a single word is not a phrase", func(t *testing.T) {
		assert.Equal(t, "", PickLeastCommonTerm("dolor"))
	})
	t.Run("whitespace anchors are stripped first", func(t *testing.T) {
		assert.Equal(t, "", PickLeastCommonTerm(`(^|\s)dolor(\s|$)`))
	})
	t.Run("regex metacharacters disqualify the phrase", func(t *testing.T) {
		assert.Equal(t, "", PickLeastCommonTerm(`dolor.* sit`))
		assert.Equal(t, "", PickLeastCommonTerm(`dolor [sS]it`))
	})
}

func TestOptimizeSearchSwapsLemmaAndPhrase(t *testing.T) {
	s := str.SearchStruct{LemmaOne: "ago", Proximate: "dolor sit", SrchColumn: "stripped_line"}
	s.SetType()
	OptimizeSearch(&s)

	assert.Equal(t, "dolor sit", s.Seeking)
	assert.Equal(t, "ago", s.LemmaTwo)
	assert.Equal(t, "", s.LemmaOne)
}

func TestOptimizeSearchSwapsLemmaAndWord(t *testing.T) {
	s := str.SearchStruct{LemmaOne: "ago", Proximate: "dolor", SrchColumn: "stripped_line"}
	s.SetType()
	OptimizeSearch(&s)

	assert.Equal(t, "dolor", s.Seeking)
	assert.Equal(t, "ago", s.LemmaTwo)
}

func TestOptimizeSearchPrefersLongerString(t *testing.T) {
	s := str.SearchStruct{Seeking: "ab", Proximate: "abcdef", SrchColumn: "stripped_line"}
	s.SetType()
	OptimizeSearch(&s)

	assert.Equal(t, "abcdef", s.Seeking)
	assert.Equal(t, "ab", s.Proximate)
}
