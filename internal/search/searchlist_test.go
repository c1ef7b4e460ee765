//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// seedsearchlistmaps - a tiny corpus: two authors, three works, one corpus
func seedsearchlistmaps() func() {
	mps.AllAuthors["lt8001"] = &str.DbAuthor{
		UID: "lt8001", Shortname: "Caesar", Genres: "Hist.", Location: "Italy", ConvDate: -50,
		WorkList: []string{"lt8001w001", "lt8001w002"},
	}
	mps.AllAuthors["lt8002"] = &str.DbAuthor{
		UID: "lt8002", Shortname: "Horatius", Genres: "Lyr.", Location: "Italy", ConvDate: -20,
		WorkList: []string{"lt8002w001"},
	}
	mps.AllWorks["lt8001w001"] = &str.DbWork{
		UID: "lt8001w001", Title: "De Bello Gallico", Genre: "Hist.", Prov: "Italy",
		ConvDate: -50, FirstLine: 1, LastLine: 100, Authentic: true,
	}
	mps.AllWorks["lt8001w002"] = &str.DbWork{
		UID: "lt8001w002", Title: "De Bello Hispaniensi", Genre: "Hist.", Prov: "Hispania",
		ConvDate: -45, FirstLine: 101, LastLine: 200, Authentic: false,
	}
	mps.AllWorks["lt8002w001"] = &str.DbWork{
		UID: "lt8002w001", Title: "Carmina", Genre: "Lyr.", Prov: "Italy",
		ConvDate: -20, FirstLine: 1, LastLine: 300, Authentic: true,
	}

	mps.AuCorpusMap["zz"] = []string{"lt8001", "lt8002"}
	mps.WkCorpusMap["zz"] = []string{"lt8001w001", "lt8001w002", "lt8002w001"}

	return func() {
		delete(mps.AllAuthors, "lt8001")
		delete(mps.AllAuthors, "lt8002")
		delete(mps.AllWorks, "lt8001w001")
		delete(mps.AllWorks, "lt8001w002")
		delete(mps.AllWorks, "lt8002w001")
		delete(mps.AuCorpusMap, "zz")
		delete(mps.WkCorpusMap, "zz")
	}
}

func searchlistsession() str.ServerSession {
	var s str.ServerSession
	s.ID = "testsession"
	s.ActiveCorp = map[string]bool{"zz": true}
	s.VariaOK = true
	s.IncertaOK = true
	s.SpuriaOK = true
	s.Earliest = vv.MINDATESTR
	s.Latest = vv.MAXDATESTR
	return s
}

func TestSessionIntoSearchlistEverything(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	pl := SessionIntoSearchlist(s)

	// no selections means all works; both authors collapse to whole-author searches
	assert.Equal(t, 3, pl.Size)
	assert.ElementsMatch(t, []string{"lt8001", "lt8002"}, pl.Inc.Authors)
	assert.Empty(t, pl.Inc.Works)
}

func TestSessionIntoSearchlistAuthorSelection(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Inclusions.Authors = []string{"lt8001"}
	pl := SessionIntoSearchlist(s)

	assert.Equal(t, 2, pl.Size)
	assert.Equal(t, []string{"lt8001"}, pl.Inc.Authors)
	assert.Empty(t, pl.Inc.Works)
}

func TestSessionIntoSearchlistWorkSelection(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Inclusions.Works = []string{"lt8001w001"}
	pl := SessionIntoSearchlist(s)

	// one work of two: no whole-author collapse
	assert.Equal(t, 1, pl.Size)
	assert.Empty(t, pl.Inc.Authors)
	assert.Equal(t, []string{"lt8001w001"}, pl.Inc.Works)
}

func TestSessionIntoSearchlistGenreSelection(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Inclusions.AuGenres = []string{"Lyr."}
	pl := SessionIntoSearchlist(s)

	assert.Equal(t, []string{"lt8002"}, pl.Inc.Authors)
}

func TestSessionIntoSearchlistExclusion(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Exclusions.Authors = []string{"lt8002"}
	pl := SessionIntoSearchlist(s)

	assert.Equal(t, []string{"lt8001"}, pl.Inc.Authors)
	assert.ElementsMatch(t, []string{"lt8002w001"}, pl.Excl.Works)
}

func TestSessionIntoSearchlistSpuria(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.SpuriaOK = false
	pl := SessionIntoSearchlist(s)

	// lt8001w002 is not authentic, so lt8001 cannot collapse to a whole author
	assert.Equal(t, []string{"lt8002"}, pl.Inc.Authors)
	assert.Equal(t, []string{"lt8001w001"}, pl.Inc.Works)
}

func TestSessionIntoSearchlistDatePruning(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Earliest = "-60"
	s.Latest = "-40"
	pl := SessionIntoSearchlist(s)

	// Horatius (-20) falls outside the window; Caesar collapses whole
	assert.Equal(t, []string{"lt8001"}, pl.Inc.Authors)
	assert.Empty(t, pl.Inc.Works)
	assert.Equal(t, 2, pl.Size)
}

func TestSessionIntoSearchlistPassages(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	s.Inclusions.Passages = []string{"lt8001_FROM_10_TO_25"}
	pl := SessionIntoSearchlist(s)

	assert.Equal(t, []string{"lt8001_FROM_10_TO_25"}, pl.Inc.Passages)
}

func TestCalculatewholeauthorsearches(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	wp := calculatewholeauthorsearches([]string{"lt8001w001", "lt8001w002", "lt8002w001"})
	assert.ElementsMatch(t, []string{"lt8001", "lt8002"}, wp[0])
	assert.Len(t, wp[1], 3)

	wp = calculatewholeauthorsearches([]string{"lt8001w001"})
	assert.Empty(t, wp[0])
	assert.Empty(t, wp[1])
}

func TestPrunebydate(t *testing.T) {
	cleanup := seedsearchlistmaps()
	defer cleanup()

	s := searchlistsession()
	sl := []string{"lt8001w001", "lt8001w002", "lt8002w001"}

	t.Run("no restrictions leave the list alone", func(t *testing.T) {
		assert.Equal(t, sl, prunebydate(sl, s))
	})
	t.Run("a narrow window drops the stragglers", func(t *testing.T) {
		s.Earliest = "-55"
		s.Latest = "-48"
		out := prunebydate(sl, s)
		assert.NotContains(t, out, "lt8002w001")
		assert.Contains(t, out, "lt8001w001")
	})
}
