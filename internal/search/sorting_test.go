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
)

// seedsortingmaps - install two authors and their works so the sorters have something to look up
func seedsortingmaps() func() {
	mps.AllAuthors["lt9001"] = &str.DbAuthor{
		UID: "lt9001", Shortname: "Cicero", ConvDate: -60,
		WorkList: []string{"lt9001w001"},
	}
	mps.AllAuthors["lt9002"] = &str.DbAuthor{
		UID: "lt9002", Shortname: "Vergilius", ConvDate: -20,
		WorkList: []string{"lt9002w001"},
	}
	mps.AllWorks["lt9001w001"] = &str.DbWork{
		UID: "lt9001w001", Title: "Academica", RecDate: "1st c. B.C.E.", ConvDate: -60,
		Prov: "Italy", FirstLine: 1, LastLine: 100, Authentic: true,
	}
	mps.AllWorks["lt9002w001"] = &str.DbWork{
		UID: "lt9002w001", Title: "Aeneis", RecDate: "1st c. B.C.E.", ConvDate: -19,
		Prov: "Gallia", FirstLine: 1, LastLine: 200, Authentic: true,
	}
	return func() {
		delete(mps.AllAuthors, "lt9001")
		delete(mps.AllAuthors, "lt9002")
		delete(mps.AllWorks, "lt9001w001")
		delete(mps.AllWorks, "lt9002w001")
	}
}

func sortablelines() []str.DbWorkline {
	return []str.DbWorkline{
		{WkUID: "lt9002w001", TbIndex: 10},
		{WkUID: "lt9001w001", TbIndex: 50},
		{WkUID: "lt9001w001", TbIndex: 2},
	}
}

func TestSortResultsByShortname(t *testing.T) {
	cleanup := seedsortingmaps()
	defer cleanup()

	s := str.SearchStruct{Results: str.WorkLineBundle{Lines: sortablelines()}}
	s.StoredSession.SortHitsBy = "shortname"
	SortResults(&s)

	// Cicero before Vergilius; line order within the author
	assert.Equal(t, "lt9001w001", s.Results.Lines[0].WkUID)
	assert.Equal(t, 2, s.Results.Lines[0].TbIndex)
	assert.Equal(t, 50, s.Results.Lines[1].TbIndex)
	assert.Equal(t, "lt9002w001", s.Results.Lines[2].WkUID)
}

func TestSortResultsByDate(t *testing.T) {
	cleanup := seedsortingmaps()
	defer cleanup()

	s := str.SearchStruct{Results: str.WorkLineBundle{Lines: sortablelines()}}
	s.StoredSession.SortHitsBy = "converted_date"
	SortResults(&s)

	// -60 before -19
	assert.Equal(t, "lt9001w001", s.Results.Lines[0].WkUID)
	assert.Equal(t, "lt9002w001", s.Results.Lines[2].WkUID)
}

func TestSortResultsByID(t *testing.T) {
	cleanup := seedsortingmaps()
	defer cleanup()

	s := str.SearchStruct{Results: str.WorkLineBundle{Lines: sortablelines()}}
	s.StoredSession.SortHitsBy = "universalid"
	SortResults(&s)

	assert.Equal(t, "index/lt9001/001/2", s.Results.Lines[0].BuildHyperlink())
	assert.Equal(t, "index/lt9002/001/10", s.Results.Lines[2].BuildHyperlink())
}

func TestSortResultsByProvenance(t *testing.T) {
	cleanup := seedsortingmaps()
	defer cleanup()

	s := str.SearchStruct{Results: str.WorkLineBundle{Lines: sortablelines()}}
	s.StoredSession.SortHitsBy = "provenance"
	SortResults(&s)

	// Gallia before Italy
	assert.Equal(t, "lt9002w001", s.Results.Lines[0].WkUID)
}

func TestWLOrderedBy(t *testing.T) {
	lines := []str.DbWorkline{
		{WkUID: "lt9001w001", TbIndex: 9},
		{WkUID: "lt9001w001", TbIndex: 1},
		{WkUID: "lt9001w001", TbIndex: 5},
	}
	byline := func(one, two *str.DbWorkline) bool { return one.TbIndex < two.TbIndex }
	WLOrderedBy(byline).Sort(lines)
	assert.Equal(t, 1, lines[0].TbIndex)
	assert.Equal(t, 5, lines[1].TbIndex)
	assert.Equal(t, 9, lines[2].TbIndex)
}
