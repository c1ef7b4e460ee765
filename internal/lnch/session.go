//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// MakeDefaultSession - fill in the blanks when setting up a new session
func MakeDefaultSession(id string) str.ServerSession {
	// note that the session map clears every time the server restarts

	var s str.ServerSession
	s.ID = id
	s.ActiveCorp = Config.DefCorp
	s.VariaOK = true
	s.IncertaOK = true
	s.SpuriaOK = true
	s.NearOrNot = "near"
	s.HitLimit = vv.DEFAULTHITLIMIT
	s.Earliest = vv.MINDATESTR
	s.Latest = vv.MAXDATESTR
	s.SortHitsBy = vv.SORTBY
	s.HitContext = vv.DEFAULTLINESOFCONTEXT
	s.BrowseCtx = Config.BrowserCtx
	s.SearchScope = vv.DEFAULTPROXIMITYSCOPE
	s.Proximity = vv.DEFAULTPROXIMITY
	s.LoginName = "Anonymous"

	return s
}
