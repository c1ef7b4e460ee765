//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

func TestUnbalancedspancleaner(t *testing.T) {
	t.Run("balanced html passes through", func(t *testing.T) {
		in := `<span class="x">abc</span>`
		assert.Equal(t, in, unbalancedspancleaner(in))
	})
	t.Run("a hanging open gets closed", func(t *testing.T) {
		out := unbalancedspancleaner(`<span class="x">abc`)
		assert.True(t, strings.HasSuffix(out, "</span>"))
	})
	t.Run("a stray close gets opened", func(t *testing.T) {
		out := unbalancedspancleaner(`abc</span>`)
		assert.True(t, strings.HasPrefix(out, `<span class="htmlbalancingsupplement">`))
	})
}

func TestFormateditorialbrackets(t *testing.T) {
	out := formateditorialbrackets("ἔδοχϲεν [τε͂ι βολε͂ι] καὶ (το͂ι)")
	assert.Contains(t, out, `[<span class="editorialmarker_squarebrackets">τε͂ι βολε͂ι</span>]`)
	assert.Contains(t, out, `(<span class="editorialmarker_roundbrackets">το͂ι</span>)`)

	out = formateditorialbrackets("⟨δραχμαὶ⟩ {ἑκατόν}")
	assert.Contains(t, out, `⟨<span class="editorialmarker_angledbrackets">δραχμαὶ</span>⟩`)
	assert.Contains(t, out, `{<span class="editorialmarker_curlybrackets">ἑκατόν</span>}`)
}

func TestFormatmultilinespans(t *testing.T) {
	// a span opened in line one and closed in line three gets re-opened per line
	in := `<span class="expanded_text">one✃✃✃two✃✃✃three</span>`
	out := formatmultilinespans(in)
	parts := strings.Split(out, "✃✃✃")
	for _, p := range parts {
		assert.Equal(t, strings.Count(p, `<span class="expanded_text">`), strings.Count(p, "</span>"))
	}
}

func TestHighlightsearchterm(t *testing.T) {
	pat := regexp.MustCompile("dolor")

	t.Run("the match gets wrapped", func(t *testing.T) {
		line := ResultPassageLine{Contents: "lorem ipsum dolor sit amet"}
		highlightsearchterm(pat, &line)
		assert.Contains(t, line.Contents, `<span class="match">dolor</span>`)
	})
	t.Run("a hyphenated match is appended instead", func(t *testing.T) {
		line := ResultPassageLine{Contents: "lorem ipsum do-", Hyphenated: "dolor"}
		highlightsearchterm(pat, &line)
		assert.Contains(t, line.Contents, "match:")
		assert.Contains(t, line.Contents, "dolor")
	})
}

func TestGethighlighter(t *testing.T) {
	t.Run("a term that would chew the markup is refused", func(t *testing.T) {
		ss := str.SearchStruct{Seeking: "span"}
		re := gethighlighter(&ss)
		assert.Equal(t, "MATCH_NOTHING", re.String())
	})
	t.Run("an ordinary term yields a working pattern", func(t *testing.T) {
		ss := str.SearchStruct{Seeking: "dolor"}
		re := gethighlighter(&ss)
		assert.True(t, re.MatchString("dolor"))
		assert.True(t, re.MatchString("DOLOR"))
	})
	t.Run("nothing to work with", func(t *testing.T) {
		ss := str.SearchStruct{}
		re := gethighlighter(&ss)
		assert.Equal(t, "MATCH_NOTHING", re.String())
	})
}

func TestLemmahighlighter(t *testing.T) {
	mps.AllLemm["amo"] = &str.DbLemma{Entry: "amo", Deriv: []string{"amo", "amas"}}
	defer delete(mps.AllLemm, "amo")

	t.Run("all derived forms match", func(t *testing.T) {
		re := lemmahighlighter("amo")
		assert.True(t, re.MatchString("amo"))
		assert.True(t, re.MatchString("Amas"))
		assert.False(t, re.MatchString("amat"))
	})
	t.Run("unknown lemma matches nothing", func(t *testing.T) {
		re := lemmahighlighter("nonexistentheadword")
		assert.Equal(t, "MATCH_NOTHING", re.String())
	})
}

func TestFormatInscriptionDates(t *testing.T) {
	mps.AllWorks["in7777w001"] = &str.DbWork{UID: "in7777w001", ConvDate: -50}
	mps.AllWorks["in7777w002"] = &str.DbWork{UID: "in7777w002", ConvDate: 2500}
	defer delete(mps.AllWorks, "in7777w001")
	defer delete(mps.AllWorks, "in7777w002")

	templ := `[<span class="date">%s</span>]`

	t.Run("literary corpora carry no dates", func(t *testing.T) {
		ln := str.DbWorkline{WkUID: "lt0472w001"}
		assert.Equal(t, "", FormatInscriptionDates(templ, &ln))
	})
	t.Run("inscriptions are dated", func(t *testing.T) {
		ln := str.DbWorkline{WkUID: "in7777w001"}
		assert.Contains(t, FormatInscriptionDates(templ, &ln), "50 BCE")
	})
	t.Run("the incerta date is flagged", func(t *testing.T) {
		ln := str.DbWorkline{WkUID: "in7777w002"}
		assert.Contains(t, FormatInscriptionDates(templ, &ln), "??? BCE/CE")
	})
}

func TestFormatinscriptionplaces(t *testing.T) {
	mps.AllWorks["in7777w001"] = &str.DbWork{UID: "in7777w001", Prov: "Attica"}
	defer delete(mps.AllWorks, "in7777w001")

	ln := str.DbWorkline{WkUID: "in7777w001"}
	assert.Contains(t, formatinscriptionplaces(&ln), "Attica")

	lit := str.DbWorkline{WkUID: "gr0001w001"}
	assert.Equal(t, "", formatinscriptionplaces(&lit))
}
