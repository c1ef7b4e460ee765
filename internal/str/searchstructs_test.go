//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTypeSingleWord(t *testing.T) {
	s := SearchStruct{Seeking: "dolor", SrchColumn: "stripped_line"}
	s.SetType()
	assert.False(t, s.Twobox)
	assert.False(t, s.HasPhraseBoxA)
	assert.False(t, s.HasLemmaBoxA)
}

func TestSetTypePhrase(t *testing.T) {
	s := SearchStruct{Seeking: "dolor sit amet", SrchColumn: "stripped_line"}
	s.SetType()
	assert.True(t, s.HasPhraseBoxA)
	assert.False(t, s.Twobox)
}

func TestSetTypeTwobox(t *testing.T) {
	s := SearchStruct{Seeking: "dolor", Proximate: "amet", SrchColumn: "stripped_line"}
	s.SetType()
	assert.True(t, s.Twobox)
	assert.False(t, s.HasPhraseBoxB)

	s = SearchStruct{Seeking: "dolor", LemmaTwo: "ago", SrchColumn: "stripped_line"}
	s.SetType()
	assert.True(t, s.Twobox)
	assert.True(t, s.HasLemmaBoxB)
}

func TestSetTypeGreekLemmaForcesAccentedColumn(t *testing.T) {
	s := SearchStruct{LemmaOne: "πόλιϲ", SrchColumn: "stripped_line"}
	s.SetType()
	assert.True(t, s.HasLemmaBoxA)
	assert.Equal(t, "accented_line", s.SrchColumn)
}

func TestSetTypeLemmaAndPhrase(t *testing.T) {
	s := SearchStruct{LemmaOne: "ago", Proximate: "dolor sit", SrchColumn: "stripped_line"}
	s.SetType()
	assert.True(t, s.HasLemmaBoxA)
	assert.True(t, s.HasPhraseBoxB)
	assert.True(t, s.IsLemmAndPhr)
}

func TestLemmaBoxSwap(t *testing.T) {
	s := SearchStruct{LemmaOne: "ago", Proximate: "dolor sit", SrchColumn: "stripped_line"}
	s.SetType()
	s.LemmaBoxSwap()

	assert.Equal(t, "dolor sit", s.Seeking)
	assert.Equal(t, "", s.LemmaOne)
	assert.Equal(t, "ago", s.LemmaTwo)
	assert.Equal(t, "", s.Proximate)

	// the type flags were recalculated
	assert.True(t, s.HasPhraseBoxA)
	assert.True(t, s.HasLemmaBoxB)
}

func TestSearchQuickestFirst(t *testing.T) {
	t.Run("two single words favor the longer", func(t *testing.T) {
		s := SearchStruct{Seeking: "ab", Proximate: "abcdef"}
		s.SearchQuickestFirst()
		assert.Equal(t, "abcdef", s.Seeking)
		assert.Equal(t, "ab", s.Proximate)
	})
	t.Run("single word beats a phrase", func(t *testing.T) {
		s := SearchStruct{Seeking: "dolor sit amet", Proximate: "consectetur"}
		s.SearchQuickestFirst()
		assert.Equal(t, "consectetur", s.Seeking)
		assert.Equal(t, "dolor sit amet", s.Proximate)
	})
	t.Run("word plus phrase stays put", func(t *testing.T) {
		s := SearchStruct{Seeking: "lorem", Proximate: "dolor sit amet"}
		s.SearchQuickestFirst()
		assert.Equal(t, "lorem", s.Seeking)
	})
}
