//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

func TestWhiteSpacer(t *testing.T) {
	t.Run("leading and trailing spaces become anchors", func(t *testing.T) {
		var ss str.SearchStruct
		out := WhiteSpacer(" ἐν Ὀρέϲτῃ ", &ss)
		assert.Equal(t, `(^|\s)ἐν Ὀρέϲτῃ(\s|$)`, out)
		assert.True(t, ss.SkgRewritten)
	})
	t.Run("no spaces means no rewrite", func(t *testing.T) {
		var ss str.SearchStruct
		out := WhiteSpacer("δολον", &ss)
		assert.Equal(t, "δολον", out)
		assert.False(t, ss.SkgRewritten)
	})
	t.Run("interior space only trims nothing", func(t *testing.T) {
		var ss str.SearchStruct
		out := WhiteSpacer("ἐν Ὀρέϲτῃ", &ss)
		assert.Equal(t, "ἐν Ὀρέϲτῃ", out)
		assert.True(t, ss.SkgRewritten)
	})
}

func TestRestoreWhiteSpace(t *testing.T) {
	var ss str.SearchStruct
	rewritten := WhiteSpacer(" ἐν Ὀρέϲτῃ ", &ss)
	assert.Equal(t, " ἐν Ὀρέϲτῃ ", RestoreWhiteSpace(rewritten))
}

func TestColumnPicker(t *testing.T) {
	r := str.DbWorkline{
		MarkedUp: "m",
		Accented: "a",
		Stripped: "s",
	}
	assert.Equal(t, "s", ColumnPicker("stripped_line", r))
	assert.Equal(t, "a", ColumnPicker("accented_line", r))
	assert.Equal(t, "m", ColumnPicker("marked_up_line", r))
	assert.Equal(t, "s", ColumnPicker("no_such_column", r))
}

func TestSearchTermFinder(t *testing.T) {
	pattern := SearchTermFinder("ποταμον")
	assert.True(t, pattern.MatchString("τὸν ποταμὸν διαβαίνει"))
	assert.True(t, pattern.MatchString("Ποταμον"))
	assert.False(t, pattern.MatchString("θαλαττα"))
}

func TestCleanInput(t *testing.T) {
	t.Run("case and sigma and uv normalization", func(t *testing.T) {
		s := str.SearchStruct{ID: "abc", Seeking: "Vrbs", SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Equal(t, "urbs", s.Seeking)
	})
	t.Run("bad characters are dropped", func(t *testing.T) {
		s := str.SearchStruct{ID: `ab"cd`, Seeking: `dolor"`, SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Equal(t, "abcd", s.ID)
		assert.Equal(t, "dolor", s.Seeking)
	})
	t.Run("accents flip the column", func(t *testing.T) {
		s := str.SearchStruct{Seeking: "πόλιν", SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Equal(t, "accented_line", s.SrchColumn)
	})
	t.Run("overlong input is truncated", func(t *testing.T) {
		s := str.SearchStruct{Seeking: strings.Repeat("a", 200), SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Len(t, s.Seeking, vv.MAXINPUTLEN)
	})
	t.Run("a lonely BoxB migrates to BoxA", func(t *testing.T) {
		s := str.SearchStruct{Proximate: "dolor", SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Equal(t, "dolor", s.Seeking)
		assert.Equal(t, "", s.Proximate)

		s = str.SearchStruct{LemmaTwo: "ago", SrchColumn: vv.DEFAULTCOLUMN}
		CleanInput(&s)
		assert.Equal(t, "ago", s.LemmaOne)
		assert.Equal(t, "", s.LemmaTwo)
	})
}

func TestLemmaIntoRegexSlice(t *testing.T) {
	derivs := make([]string, 30)
	for i := 0; i < 30; i++ {
		derivs[i] = "forma" + strings.Repeat("e", i)
	}
	mps.AllLemm["formo"] = &str.DbLemma{Entry: "formo", Deriv: derivs}
	defer delete(mps.AllLemm, "formo")

	t.Run("forms are bundled in chunks", func(t *testing.T) {
		qq := LemmaIntoRegexSlice("formo")
		require.Len(t, qq, 2)
		assert.Equal(t, vv.MAXLEMMACHUNKSIZE, strings.Count(qq[0], `(^|\s)`))
		assert.Contains(t, qq[0], `(^|\s)forma(\s|$)`)
	})
	t.Run("an unknown headword finds nothing", func(t *testing.T) {
		qq := LemmaIntoRegexSlice("nonexistentheadword")
		assert.Equal(t, []string{"FIND_NOTHING"}, qq)
	})
}
