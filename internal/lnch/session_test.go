//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

func TestMakeDefaultSession(t *testing.T) {
	s := MakeDefaultSession("testid123")
	assert.Equal(t, "testid123", s.ID)
	assert.Equal(t, "Anonymous", s.LoginName)
	assert.Equal(t, "near", s.NearOrNot)
	assert.Equal(t, vv.MINDATESTR, s.Earliest)
	assert.Equal(t, vv.MAXDATESTR, s.Latest)
	assert.True(t, s.VariaOK)
	assert.True(t, s.IncertaOK)
	assert.True(t, s.SpuriaOK)
	assert.Equal(t, vv.DEFAULTHITLIMIT, s.HitLimit)
}

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, "list", c.JobFeeder)
	assert.Equal(t, "local", c.ProgFeeder)
	assert.Equal(t, vv.MAXSEARCHTOTAL, c.MaxSrchTot)
	assert.Equal(t, vv.MAXSEARCHPERIPADDR, c.MaxSrchIP)
	assert.LessOrEqual(t, c.WorkerCount, runtime.NumCPU())
	// the five corpora arrive via DEFAULTCORPORA
	assert.Len(t, c.DefCorp, 5)
	assert.True(t, c.DefCorp[vv.GREEKCORP])
	assert.True(t, c.DefCorp[vv.LATINCORP])
}
