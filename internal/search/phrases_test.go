//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

func TestPhrasecombinations(t *testing.T) {
	t.Run("five words", func(t *testing.T) {
		comb := phrasecombinations("one two three four five")
		require.Len(t, comb, 4)
		assert.Equal(t, [2]string{"one$", "^two three four five"}, comb[0])
		assert.Equal(t, [2]string{"one two$", "^three four five"}, comb[1])
		assert.Equal(t, [2]string{"one two three four$", "^five"}, comb[3])
	})
	t.Run("two words", func(t *testing.T) {
		comb := phrasecombinations("non solum")
		require.Len(t, comb, 1)
		assert.Equal(t, [2]string{"non$", "^solum"}, comb[0])
	})
	t.Run("single word has no split", func(t *testing.T) {
		comb := phrasecombinations("solum")
		assert.Empty(t, comb)
	})
}

func TestFindPhrasesAcrossLines(t *testing.T) {
	// a phrase can straddle a line break: the head of the phrase ends one line and the tail opens
	// the next one; the hit belongs to the first of the two lines
	mps.AllWorks["lt9003w001"] = &str.DbWork{
		UID: "lt9003w001", Title: "Carmina", FirstLine: 1, LastLine: 100, Authentic: true,
	}
	defer delete(mps.AllWorks, "lt9003w001")

	straddlehead := str.DbWorkline{WkUID: "lt9003w001", TbIndex: 10, Stripped: "lorem ipsum dolor"}
	straddletail := str.DbWorkline{WkUID: "lt9003w001", TbIndex: 11, Stripped: "sit amet consectetur"}
	wholeline := str.DbWorkline{WkUID: "lt9003w001", TbIndex: 12, Stripped: "et dolor sit amet"}

	ss := str.SearchStruct{
		Seeking:    "dolor sit",
		SrchColumn: "stripped_line",
	}
	ss.Results.Lines = []str.DbWorkline{straddlehead, straddletail, wholeline}

	FindPhrasesAcrossLines(&ss)

	found := make(map[string]bool)
	for _, r := range ss.Results.Lines {
		found[r.BuildHyperlink()] = true
	}

	require.Len(t, ss.Results.Lines, 2)
	assert.True(t, found[straddlehead.BuildHyperlink()], "the line where the phrase begins should register the hit")
	assert.True(t, found[wholeline.BuildHyperlink()], "a line containing the whole phrase should register the hit")
	assert.False(t, found[straddletail.BuildHyperlink()], "the continuation line alone is not a hit")
}
