//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/p-laskaris/AristarchosGoServer/internal/gen"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/search"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"net/http"
)

//
// ROUTING
//

// RtSearchConfirm - just tells the client JS where to find the poll
func RtSearchConfirm(c echo.Context) error {
	pt := fmt.Sprintf("%d", lnch.Config.HostPort)
	return c.String(http.StatusOK, pt)
}

// RtSearch - find X (derived from boxes on page) in Y (derived from the session)
func RtSearch(c echo.Context) error {
	// "OneBox"
	// [1] single word
	// [2] phrase
	// [3] lemma
	// "TwoBox"
	// [4] single + single
	// [5] lemma + single
	// [6] lemma + lemma
	// [7] phrase + single
	// [8] phrase + lemma
	// [9] phrase + phrase

	const (
		TOOMANYIP    = "<code>Cannot execute this search. Your ip address (%s) is already running the maximum number of simultaneous searches allowed: %d.</code>"
		TOOMANYTOTAL = "<code>Cannot execute this search. The server is already running the maximum number of simultaneous searches allowed: %d.</code>"
	)

	user := vlt.ReadUUIDCookie(c)

	// [A] ARE WE GOING TO DO THIS AT ALL?

	if !vlt.AllAuthorized.Check(user) {
		return gen.JSONresponse(c, str.SearchOutputJSON{JS: vv.VALIDATIONBOX})
	}

	getsrchcount := func(ip string) int {
		responder := vlt.WSSICount{Key: ip, Response: make(chan int)}
		vlt.WSInfo.IPSrchCount <- responder
		return <-responder.Response
	}

	if getsrchcount(c.RealIP()) >= lnch.Config.MaxSrchIP {
		m := fmt.Sprintf(TOOMANYIP, c.RealIP(), getsrchcount(c.RealIP()))
		return gen.JSONresponse(c, str.SearchOutputJSON{Searchsummary: m})
	}

	if len(vlt.WebsocketPool.ClientMap) >= lnch.Config.MaxSrchTot {
		m := fmt.Sprintf(TOOMANYTOTAL, len(vlt.WebsocketPool.ClientMap))
		return gen.JSONresponse(c, str.SearchOutputJSON{Searchsummary: m})
	}

	// [B] OK, WE ARE DOING IT

	srch := search.BuildDefaultSearch(c)
	se := vlt.AllSessions.GetSess(user)

	c.Response().After(func() { Msg.LogPaths("RtSearch()") })

	// HasPhraseBoxA makes us use a fake limit temporarily
	reallimit := srch.CurrentLimit

	var completed str.SearchStruct
	if srch.Twobox {
		if srch.ProxScope == "words" {
			completed = search.WithinXWordsSearch(srch)
		} else {
			completed = search.WithinXLinesSearch(srch)
		}
	} else {
		completed = srch
		search.SearchAndInsertResults(&completed)
		if completed.HasPhraseBoxA {
			search.FindPhrasesAcrossLines(&completed)
		}
	}

	if completed.Results.Len() > reallimit {
		completed.Results.ResizeTo(reallimit)
	}

	// [C] DONE: TIME TO FORMAT

	search.SortResults(&completed)
	soj := str.SearchOutputJSON{}
	if se.HitContext == 0 {
		soj = search.FormatNoContextResults(&completed)
	} else {
		soj = search.FormatWithContextResults(&completed)
	}

	vlt.ProgressDelete(srch.WSID)
	return gen.JSONresponse(c, soj)
}
