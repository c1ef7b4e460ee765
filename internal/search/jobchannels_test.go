//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

func testqueries(n int) []str.PrerolledQuery {
	qq := make([]str.PrerolledQuery, n)
	for i := 0; i < n; i++ {
		qq[i] = str.PrerolledQuery{PsqlQuery: fmt.Sprintf("SELECT %d", i), PsqlData: "term"}
	}
	return qq
}

func TestListJobChannel(t *testing.T) {
	lc := NewListJobChannel()
	lc.Enqueue(testqueries(3))
	assert.Equal(t, 3, lc.Remaining())

	// fifo order
	j, ok := lc.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, "SELECT 0", j.PsqlQuery)
	assert.Equal(t, 2, lc.Remaining())

	lc.Drain()
	assert.Equal(t, 0, lc.Remaining())
	_, ok = lc.TryDequeue()
	assert.False(t, ok)
}

func TestQueueJobChannel(t *testing.T) {
	qc := NewQueueJobChannel(8)
	qc.Enqueue(testqueries(3))

	var got []string
	for {
		j, ok := qc.TryDequeue()
		if !ok {
			break
		}
		got = append(got, j.PsqlQuery)
	}
	assert.Equal(t, []string{"SELECT 0", "SELECT 1", "SELECT 2"}, got)
	assert.Equal(t, 0, qc.Remaining())
}

func TestQueueJobChannelDrain(t *testing.T) {
	qc := NewQueueJobChannel(8)
	qc.Enqueue(testqueries(5))
	qc.Drain()
	assert.Equal(t, 0, qc.Remaining())
	_, ok := qc.TryDequeue()
	assert.False(t, ok)
}

func TestJobChannelViaConfig(t *testing.T) {
	was := lnch.Config.JobFeeder
	defer func() { lnch.Config.JobFeeder = was }()

	lnch.Config.JobFeeder = vv.JOBFEEDERLIST
	_, islist := JobChannelViaConfig("srch01", 10).(*ListJobChannel)
	assert.True(t, islist)

	lnch.Config.JobFeeder = vv.JOBFEEDERQUEUE
	_, isqueue := JobChannelViaConfig("srch01", 10).(*QueueJobChannel)
	assert.True(t, isqueue)

	// nonsense falls back to the managed list
	lnch.Config.JobFeeder = "zeppelin"
	_, islist = JobChannelViaConfig("srch01", 10).(*ListJobChannel)
	assert.True(t, islist)
}
