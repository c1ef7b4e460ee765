//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

//
// WEBSOCKET INFRASTRUCTURE: see https://tutorialedge.net/projects/chat-system-in-go-and-react/part-4-handling-multiple-clients/
//

type PollData struct {
	TotalWrk  int    `json:"Poolofwork"`
	Remain    int    `json:"Remaining"`
	Hits      int    `json:"Hitcount"`
	Msg       string `json:"Statusmessage"`
	Elapsed   string `json:"Elapsed"`
	Extra     string `json:"Notes"`
	ID        string `json:"ID"`
	Iteration int
}

type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
	ReadID    chan string
}

type WSJSOut struct {
	V     string `json:"value"`
	ID    string `json:"ID"`
	Close string `json:"close"`
}

var pollidcheck = regexp.MustCompile(`^[a-f0-9-]{1,36}$`)

// ValidatePollID - the client supplied the id; do not let garbage into the progress machinery
func ValidatePollID(id string) string {
	// the real ids come from uuid.New().String()
	if pollidcheck.MatchString(id) {
		return id
	}
	return "this_poll_will_never_be_found"
}

// ReceiveID - get the searchID from the client; record it; then exit
func (c *WSClient) ReceiveID() {
	const (
		FAIL1 = `WSClient.ReceiveID() failed`
		FAIL2 = `WSClient.ReceiveID() never received the search id`
	)

	quit := time.Now().Add(time.Second * 1)

	for {
		_, m, err := c.Conn.ReadMessage()
		if err != nil {
			Msg.FYI(FAIL1)
			return
		}

		if len(m) != 0 {
			id := string(m)
			id = strings.Replace(id, `"`, "", -1)
			c.ID = ValidatePollID(id)
			c.Pool.ReadID <- c.ID
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(FAIL2)
			break
		}
	}
}

// WSMessageLoop - output the constantly updated search progress to the websocket; then exit
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL    = `WSClient.WSMessageLoop() never found '%s' among the active searches`
		SUCCESS = `WSClient.WSMessageLoop() found '%s' among the active searches`
		NOTEAPP = `<br><span class="smallerthannormal">%s</span>`
	)

	// wait for the search to exist
	quit := time.Now().Add(time.Second * 1)

	for {
		srchinfo := FetchSrchInfo(c.ID)
		if srchinfo.SrchCount != 0 && srchinfo.Exists {
			Msg.FYI(fmt.Sprintf(SUCCESS, c.ID))
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(fmt.Sprintf(FAIL, c.ID))
			break
		}
	}

	var pd PollData
	pd.ID = c.ID

	// loop until search finishes
	for {
		srchinfo := FetchSrchInfo(c.ID)
		if srchinfo.Exists {
			pd.Remain = srchinfo.Remain
			pd.Hits = srchinfo.Hits
			pd.TotalWrk = srchinfo.TableCt
			pd.Msg = strings.Replace(srchinfo.Summary, "Sought", "Seeking", -1)
		} else {
			break
		}

		pd.Elapsed = fmt.Sprintf("%.1fs", time.Since(srchinfo.Launched).Seconds())

		pd.Iteration = srchinfo.Iteration

		if srchinfo.ExtraNote != "" {
			pd.Extra = fmt.Sprintf(NOTEAPP, srchinfo.ExtraNote)
		}

		jso := &WSJSOut{
			V:     formatpoll(pd),
			ID:    c.ID,
			Close: "open",
		}

		c.Pool.JSO <- jso
		time.Sleep(vv.WSPOLLINGPAUSE)
	}

	// the record is gone; tell the client exactly once that there is nothing left to poll
	// the route that sent the client into the pool is the one that removes it
	fin := &WSJSOut{
		V:     `{"active": "inactive"}`,
		ID:    c.ID,
		Close: "close",
	}
	c.Pool.JSO <- fin
}

// FetchSrchInfo - poll whichever progress registry the configuration selected
func FetchSrchInfo(id string) WSSrchInfo {
	if lnch.Config.ProgFeeder == vv.PROGFEEDERREDIS {
		return RedisFetchSrchInfo(id)
	}
	return WSFetchSrchInfo(id)
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only called once at app startup)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "Starting polling loop for %s"
		MSG2 = "WSPool client failed on WriteMessage()"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				Msg.EC(y)
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					Msg.WARN(MSG2)
					delete(pool.ClientMap, cl)
				}
			}
		}
	}

	for {
		select {
		case id := <-pool.Add:
			pool.ClientMap[id] = true
		case id := <-pool.Remove:
			delete(pool.ClientMap, id)
		case id := <-pool.ReadID:
			Msg.PEEK(fmt.Sprintf(MSG1, id))
		case wrt := <-pool.JSO:
			writemsg(wrt)
		}
	}
}

// WSFillNewPool - build a new WSPool (one and only one built at app startup)
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
		ReadID:    make(chan string),
	}
}

// formatpoll - build HTML to send to the JS on the other side
func formatpoll(pd PollData) string {
	// example:
	// Seeking <span class="sought">»μελιϲϲα«</span>: <span class="progress">31%</span> completed&nbsp;(0.3s)<br>
	// (<span class="progress">199</span> found)<br>

	const (
		FU  = `Finishing up...&nbsp;`
		MS  = `Searching for matches among the initial finds...&nbsp;`
		GF  = `Formatting the results...&nbsp;`
		PCT = `: <span class="progress">%s</span> completed&nbsp;(%s)<br>`
		EL1 = `&nbsp;(%s)<br>%s`
		EL2 = `&nbsp;(%s)`
		HIT = `(<span class="progress">%d</span> found)<br>`
	)

	pctd := ((float32(pd.TotalWrk) - float32(pd.Remain)) / float32(pd.TotalWrk)) * 100
	pcts := fmt.Sprintf("%.0f", pctd) + "%"

	htm := pd.Msg // e.g.: Seeking <span class="sought">»μελιϲϲα«</span>

	// conditionally add message based on iteration #
	it := func() string {
		var m string
		switch pd.Iteration {
		case 2:
			m = MS
		case 3:
			m = GF
		default:
			// no change
		}
		return m
	}()

	if pctd != 0 && pd.Remain != 0 && pd.TotalWrk != 0 {
		// normal in progress
		htm += fmt.Sprintf(PCT, pcts, pd.Elapsed)
		htm += it
	} else if pd.Remain == 0 && pd.TotalWrk != 0 {
		// finished, mostly
		htm += fmt.Sprintf(EL1, pd.Elapsed, FU)
	} else {
		// a run with no known "total work" yet
		htm += fmt.Sprintf(EL2, pd.Elapsed)
	}

	if pd.Hits > 0 {
		htm += fmt.Sprintf(HIT, pd.Hits)
	}

	if len(pd.Extra) != 0 {
		htm += pd.Extra
	}

	return htm
}
