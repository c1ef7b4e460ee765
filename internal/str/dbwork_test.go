//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDbWorkIDs(t *testing.T) {
	w := DbWork{UID: "gr2017w068"}
	assert.Equal(t, "068", w.WkID())
	assert.Equal(t, "gr2017", w.AuID())

	short := DbWork{UID: "xx"}
	assert.Equal(t, "", short.AuID())
}

func TestDbWorkCountLevels(t *testing.T) {
	w := DbWork{LL0: "verse", LL1: "poem", LL2: "book"}
	assert.Equal(t, 3, w.CountLevels())
	assert.Equal(t, []string{"", "", "", "book", "poem", "verse"}, w.CitationFormat())
}

func TestDbWorkDateInRange(t *testing.T) {
	w := DbWork{ConvDate: -50}
	assert.True(t, w.DateInRange(-100, 0))
	assert.False(t, w.DateInRange(0, 100))
	assert.True(t, w.DateInRange(-50, -50))
}
