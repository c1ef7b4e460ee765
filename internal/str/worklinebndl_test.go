//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testbundle(n int) WorkLineBundle {
	var wlb WorkLineBundle
	for i := 0; i < n; i++ {
		wlb.AppendOne(DbWorkline{WkUID: "lt0474w001", TbIndex: i + 1})
	}
	return wlb
}

func TestWorkLineBundleResizeTo(t *testing.T) {
	wlb := testbundle(5)
	wlb.ResizeTo(3)
	assert.Equal(t, 3, wlb.Len())

	// an oversized request changes nothing
	wlb.ResizeTo(100)
	assert.Equal(t, 3, wlb.Len())
}

func TestWorkLineBundleFirstLine(t *testing.T) {
	wlb := testbundle(2)
	assert.Equal(t, 1, wlb.FirstLine().TbIndex)

	empty := WorkLineBundle{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, DbWorkline{}, empty.FirstLine())
}

func TestWorkLineBundleAppend(t *testing.T) {
	wlb := testbundle(1)
	wlb.AppendLines([]DbWorkline{{TbIndex: 7}, {TbIndex: 8}})
	assert.Equal(t, 3, wlb.Len())
	assert.False(t, wlb.IsEmpty())
}

func TestWorkLineBundleYieldAll(t *testing.T) {
	wlb := testbundle(4)
	seen := 0
	for ln := range wlb.YieldAll() {
		assert.Equal(t, seen+1, ln.TbIndex)
		seen++
	}
	assert.Equal(t, 4, seen)
}
