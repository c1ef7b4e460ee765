//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePollID(t *testing.T) {
	t.Run("uuid style ids pass", func(t *testing.T) {
		id := "662fe693-2cba-463c-b994-5ba210b03c7d"
		assert.Equal(t, id, ValidatePollID(id))
		assert.Equal(t, "ab12-cd34", ValidatePollID("ab12-cd34"))
	})
	t.Run("garbage is swapped for a harmless id", func(t *testing.T) {
		const SUB = "this_poll_will_never_be_found"
		assert.Equal(t, SUB, ValidatePollID(""))
		assert.Equal(t, SUB, ValidatePollID("DROP TABLE gr0001;"))
		assert.Equal(t, SUB, ValidatePollID("ABCDEF"))
		assert.Equal(t, SUB, ValidatePollID("662fe6932cba463cb9945ba210b03c7d662fe693"))
	})
}

func TestFormatPoll(t *testing.T) {
	t.Run("in progress", func(t *testing.T) {
		pd := PollData{
			TotalWrk: 100,
			Remain:   50,
			Hits:     3,
			Msg:      `Seeking <span class="sought">»μελιϲϲα«</span>`,
			Elapsed:  "0.3s",
			ID:       "abc123",
		}
		htm := formatpoll(pd)
		assert.Contains(t, htm, "Seeking")
		assert.Contains(t, htm, `<span class="progress">50%</span>`)
		assert.Contains(t, htm, `<span class="progress">3</span> found`)
	})
	t.Run("second iteration message", func(t *testing.T) {
		pd := PollData{TotalWrk: 100, Remain: 50, Elapsed: "1.0s", Iteration: 2}
		htm := formatpoll(pd)
		assert.Contains(t, htm, "Searching for matches among the initial finds")
	})
	t.Run("finishing up", func(t *testing.T) {
		pd := PollData{TotalWrk: 10, Remain: 0, Elapsed: "2.1s"}
		htm := formatpoll(pd)
		assert.Contains(t, htm, "Finishing up")
	})
	t.Run("no known total work yet", func(t *testing.T) {
		pd := PollData{Elapsed: "0.1s"}
		htm := formatpoll(pd)
		assert.Contains(t, htm, "&nbsp;(0.1s)")
		assert.NotContains(t, htm, "completed")
	})
	t.Run("extra note is appended", func(t *testing.T) {
		pd := PollData{TotalWrk: 10, Remain: 0, Elapsed: "2.1s", Extra: "an extra note"}
		htm := formatpoll(pd)
		assert.Contains(t, htm, "an extra note")
	})
}

func TestWSFillNewPool(t *testing.T) {
	p := WSFillNewPool()
	assert.NotNil(t, p.Add)
	assert.NotNil(t, p.Remove)
	assert.NotNil(t, p.JSO)
	assert.NotNil(t, p.ReadID)
	assert.Empty(t, p.ClientMap)
}

func TestWSPoolClientRemoval(t *testing.T) {
	p := WSFillNewPool()
	go p.WSPoolStartListening()

	// the Conn stays nil: if a message ever reached this client the loop would panic on WriteMessage()
	cl := &WSClient{ID: "662fe693-2cba-463c-b994-5ba210b03c7d", Pool: p}

	// the channels are unbuffered, so every send below completes only after the loop handled it;
	// ReadID doubles as a barrier proving the loop is still alive
	p.Add <- cl
	p.ReadID <- cl.ID
	assert.Contains(t, p.ClientMap, cl)

	p.Remove <- cl
	p.Remove <- cl // asking twice must be harmless
	p.JSO <- &WSJSOut{ID: cl.ID, V: "stale poll data"}
	p.ReadID <- cl.ID

	assert.Empty(t, p.ClientMap)
}
