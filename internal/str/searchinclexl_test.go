//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchIncExlIsEmpty(t *testing.T) {
	var i SearchIncExl
	assert.True(t, i.IsEmpty())
	assert.Equal(t, 0, i.CountItems())

	i.Authors = []string{"lt0474"}
	i.Passages = []string{"lt0474_FROM_36136_TO_36151"}
	assert.False(t, i.IsEmpty())
	assert.Equal(t, 2, i.CountItems())
}

func TestSearchIncExlBuildByName(t *testing.T) {
	var i SearchIncExl
	i.MappedPsgByName = map[string]string{
		"lt0474_FROM_36136_TO_36151": "Cicero, Pro Caelio, section 1",
		"gr0085_FROM_100_TO_200":     "Aeschylus, Persae, 1",
	}
	i.MappedAuthByName = map[string]string{"lt0474": "Cicero"}
	i.MappedWkByName = map[string]string{"lt0474w001": "Cicero, Academica"}

	i.BuildPsgByName()
	i.BuildAuByName()
	i.BuildWkByName()

	// sorted output
	assert.Equal(t, []string{"Aeschylus, Persae, 1", "Cicero, Pro Caelio, section 1"}, i.ListedPBN)
	assert.Equal(t, []string{"Cicero"}, i.ListedABN)
	assert.Equal(t, []string{"Cicero, Academica"}, i.ListedWBN)
}
