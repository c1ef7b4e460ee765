//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

//
// CHANNEL-BASED SEARCHINFO REPORTING TO COMMUNICATE RESULTS BETWEEN ROUTINES: search routes write; websocket reads
//

// WSSrchInfo - struct used to deliver info about searches in progress
type WSSrchInfo struct {
	ID        string
	User      string
	Exists    bool
	Hits      int
	Remain    int
	TableCt   int
	SrchCount int
	ExtraNote string
	Summary   string
	Iteration int
	Launched  time.Time
	RealIP    string
	CancelFnc context.CancelFunc
}

// WSSIKVi - WSSearchInfoHub helper struct for setting an int Val on the item at map[Key]
type WSSIKVi struct {
	Key string
	Val int
}

// WSSIKVs - WSSearchInfoHub helper struct for setting a string Val on the item at map[Key]
type WSSIKVs struct {
	Key string
	Val string
}

// WSSIReply - WSSearchInfoHub helper struct for returning the WSSrchInfo stored at map[Key]
type WSSIReply struct {
	Key      string
	Response chan WSSrchInfo
}

type WSSICount struct {
	Key      string
	Response chan int
}

type WSInfoHubInterface struct {
	UpdateHits      chan WSSIKVi
	UpdateRemain    chan WSSIKVi
	UpdateExtraNote chan WSSIKVs
	UpdateSummMsg   chan WSSIKVs
	UpdateIteration chan WSSIKVi
	UpdateTW        chan WSSIKVi
	RequestInfo     chan WSSIReply
	InsertInfo      chan WSSrchInfo
	IPSrchCount     chan WSSICount
	Del             chan string
	Reset           chan string
}

// BuildWSInfoHubIf - build the WSInfoHubInterface that will interact with WSSearchInfoHub (one and only one built at app startup)
func BuildWSInfoHubIf() *WSInfoHubInterface {
	return &WSInfoHubInterface{
		UpdateHits:      make(chan WSSIKVi, 2*runtime.NumCPU()),
		UpdateRemain:    make(chan WSSIKVi, 2*runtime.NumCPU()),
		UpdateExtraNote: make(chan WSSIKVs, 2*runtime.NumCPU()),
		UpdateSummMsg:   make(chan WSSIKVs, 2*runtime.NumCPU()),
		UpdateIteration: make(chan WSSIKVi, 2*runtime.NumCPU()),
		UpdateTW:        make(chan WSSIKVi),
		RequestInfo:     make(chan WSSIReply),
		InsertInfo:      make(chan WSSrchInfo),
		IPSrchCount:     make(chan WSSICount),
		Del:             make(chan string),
		Reset:           make(chan string),
	}
}

// WSSearchInfoHub - the loop that lets you read/write from/to the various WSSrchInfo channels via the WSInfo global (a *WSInfoHubInterface)
func WSSearchInfoHub() {
	const (
		CANC    = "WSSearchInfoHub() reports that '%s' was cancelled"
		FINWAIT = 10
		FINCHK  = 60
	)

	var (
		Allinfo  = make(map[string]WSSrchInfo)
		Finished = make(map[string]time.Time)
	)

	reporter := func(r WSSIReply) {
		if _, ok := Allinfo[r.Key]; ok {
			r.Response <- Allinfo[r.Key]
		} else {
			// "false" triggers a break in RtWebsocket()
			r.Response <- WSSrchInfo{Exists: false}
		}
	}

	fetchifexists := func(id string) WSSrchInfo {
		if _, ok := Allinfo[id]; ok {
			return Allinfo[id]
		} else {
			// any non-zero value for SrchCount is fine; the test in RtWebsocket() is just for 0
			return WSSrchInfo{ID: id, Exists: true, SrchCount: 1}
		}
	}

	ipcount := func(id string) int {
		count := 0
		for _, v := range Allinfo {
			if v.RealIP == id {
				count++
			}
		}
		return count
	}

	// see also the notes at RtResetSession()
	cancelall := func(u string) {
		for _, v := range Allinfo {
			if v.User == u {
				v.CancelFnc()
				Msg.PEEK(fmt.Sprintf(CANC, v.ID))
			}
		}
	}

	// a deleted search can respawn if a late worker message arrives after the Del; tombstone the id for a while
	storeunlessfinished := func(si WSSrchInfo) {
		if _, ok := Finished[si.ID]; !ok {
			Allinfo[si.ID] = si
		}
	}

	// storeunlessfinished() requires a cleanup function too...
	cleanfinished := func() {
		for {
			for f := range Finished {
				ft := Finished[f]
				later := ft.Add(time.Second * FINWAIT)
				if time.Now().After(later) {
					delete(Finished, f)
				}
			}
			time.Sleep(time.Second * FINCHK)
		}
	}

	go cleanfinished()

	// the main loop; it will never exit
	for {
		select {
		case rq := <-WSInfo.RequestInfo:
			reporter(rq)
		case tw := <-WSInfo.UpdateTW:
			x := fetchifexists(tw.Key)
			x.TableCt = tw.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateHits:
			x := fetchifexists(wr.Key)
			x.Hits = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateRemain:
			x := fetchifexists(wr.Key)
			x.Remain = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateExtraNote:
			x := fetchifexists(wr.Key)
			x.ExtraNote = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateSummMsg:
			x := fetchifexists(wr.Key)
			x.Summary = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateIteration:
			x := fetchifexists(wr.Key)
			x.Iteration = wr.Val
			storeunlessfinished(x)
		case si := <-WSInfo.InsertInfo:
			storeunlessfinished(si)
		case ipc := <-WSInfo.IPSrchCount:
			ipc.Response <- ipcount(ipc.Key)
		case reset := <-WSInfo.Reset:
			cancelall(reset)
		case del := <-WSInfo.Del:
			Finished[del] = time.Now()
			delete(Allinfo, del)
		}
	}
}

// WSFetchSrchInfo - ask the hub for the WSSrchInfo stored at an id
func WSFetchSrchInfo(id string) WSSrchInfo {
	responder := WSSIReply{Key: id, Response: make(chan WSSrchInfo)}
	WSInfo.RequestInfo <- responder
	return <-responder.Response
}
