//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testline() DbWorkline {
	return DbWorkline{
		WkUID:     "gr0001w001",
		TbIndex:   123,
		Lvl5Value: "-1",
		Lvl4Value: "-1",
		Lvl3Value: "-1",
		Lvl2Value: "3",
		Lvl1Value: "10",
		Lvl0Value: "2",
		MarkedUp:  "τὸν δ ἀπαμειβόμενοϲ",
		Accented:  "τὸν δ ἀπαμειβόμενοϲ",
		Stripped:  "τον δ απαμειβομενοϲ",
	}
}

func TestDbWorklineIDs(t *testing.T) {
	ln := testline()
	assert.Equal(t, "gr0001", ln.AuID())
	assert.Equal(t, "001", ln.WkID())
	assert.Equal(t, "gr", ln.FindCorpus())
}

func TestDbWorklineFindLocus(t *testing.T) {
	ln := testline()
	assert.Equal(t, []string{"3", "10", "2"}, ln.FindLocus())
	assert.Equal(t, "3.10.2", ln.Citation())
}

func TestDbWorklineLvls(t *testing.T) {
	ln := testline()
	assert.Equal(t, 3, ln.Lvls())
	assert.Equal(t, "2", ln.LvlVal(0))
	assert.Equal(t, "10", ln.LvlVal(1))
	assert.Equal(t, "3", ln.LvlVal(2))
	assert.Equal(t, "", ln.LvlVal(9))
}

func TestDbWorklineBuildHyperlink(t *testing.T) {
	ln := testline()
	assert.Equal(t, "index/gr0001/001/123", ln.BuildHyperlink())

	empty := DbWorkline{}
	assert.Equal(t, "", empty.BuildHyperlink())
}

func TestDbWorklineSameLevelAs(t *testing.T) {
	a := testline()
	b := testline()
	assert.True(t, a.SameLevelAs(b))
	b.Lvl0Value = "3"
	assert.False(t, a.SameLevelAs(b))
}

func TestDbWorklineSlices(t *testing.T) {
	ln := testline()
	assert.Equal(t, []string{"τον", "δ", "απαμειβομενοϲ"}, ln.StrippedSlice())
	ln.MarkedUp = `<span class="x">τὸν</span> δ`
	assert.Equal(t, []string{"τὸν", "δ"}, ln.MarkedUpSlice())
}

func TestDbWorklineGatherMetadata(t *testing.T) {
	ln := testline()
	ln.MarkedUp = `<hmu_metadata_provenance value="Rome" /><hmu_metadata_notes value="cf. CIL I" />dis manibus`
	ln.GatherMetadata()
	assert.Equal(t, "dis manibus", ln.MarkedUp)
	nn := ln.GetNotes()
	assert.Equal(t, "Rome", nn["loc:"])
	assert.Equal(t, "cf. CIL I", nn[""])
}

func TestDbWorklinePurgeMetadata(t *testing.T) {
	ln := testline()
	ln.MarkedUp = `<hmu_metadata_date value="150 CE" />text`
	ln.PurgeMetadata()
	assert.Equal(t, "text", ln.MarkedUp)
}
