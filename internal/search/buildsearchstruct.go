//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

//
// INITIAL SETUP
//

func GenerateSrchInfo(srch *str.SearchStruct) vlt.WSSrchInfo {
	return vlt.WSSrchInfo{
		ID:        srch.WSID,
		User:      srch.User,
		Exists:    true,
		Hits:      0,
		Remain:    srch.TableSize,
		TableCt:   srch.TableSize,
		SrchCount: 1,
		ExtraNote: "",
		Summary:   srch.InitSum,
		Iteration: 0,
		Launched:  srch.Launched,
		RealIP:    srch.RealIP,
		CancelFnc: srch.CancelFnc,
	}
}

// BuildDefaultSearch - fill out the basic values for a new search
func BuildDefaultSearch(c echo.Context) str.SearchStruct {
	user := vlt.ReadUUIDCookie(c)
	sess := vlt.AllSessions.GetSess(user)

	var s str.SearchStruct
	s.User = user
	s.Launched = time.Now()
	s.CurrentLimit = sess.HitLimit
	s.OriginalLimit = sess.HitLimit
	s.SrchColumn = vv.DEFAULTCOLUMN
	s.SrchSyntax = vv.DEFAULTQUERYSYNTAX
	s.OrderBy = vv.ORDERBY
	s.SearchIn = sess.Inclusions
	s.SearchEx = sess.Exclusions
	s.ProxDist = sess.Proximity
	s.ProxScope = sess.SearchScope
	s.NotNear = false
	s.Twobox = false
	s.HasPhraseBoxA = false
	s.HasLemmaBoxA = false
	s.SkgRewritten = false
	s.OneHit = sess.OneHit
	s.PhaseNum = 1
	s.TTName = strings.Replace(uuid.New().String(), "-", "", -1)
	s.StoredSession = sess
	s.RealIP = c.RealIP()

	if sess.NearOrNot == "notnear" {
		s.NotNear = true
	}

	s.ID = c.Param("id")
	s.WSID = s.ID

	InsertNewContextIntoSS(&s)

	s.Seeking = c.QueryParam("skg")
	s.Proximate = c.QueryParam("prx")
	s.LemmaOne = c.QueryParam("lem")
	s.LemmaTwo = c.QueryParam("plm")
	s.IPAddr = c.RealIP()

	CleanInput(&s)
	s.SetType()        // must happen before SSBuildQueries()
	OptimizeSearch(&s) // maybe rewrite the search to make it faster
	FormatInitialSummary(&s)

	// now safe to rewrite skg so that "^|\s", etc. can be added
	s.Seeking = WhiteSpacer(s.Seeking, &s)
	s.Proximate = WhiteSpacer(s.Proximate, &s)

	se := vlt.AllSessions.GetSess(user)
	s.StoredSession = se
	sl := SessionIntoSearchlist(se)

	s.SearchIn = sl.Inc
	s.SearchEx = sl.Excl
	s.SearchSize = sl.Size

	if s.Twobox {
		s.CurrentLimit = vv.FIRSTSEARCHLIM
	}

	SSBuildQueries(&s)

	s.TableSize = len(s.Queries)
	s.IsActive = true

	vlt.ProgressInsert(GenerateSrchInfo(&s))
	return s
}

// BuildHollowSearch - is really a way to grab line collections via synthetic searchlists
func BuildHollowSearch() str.SearchStruct {
	s := str.SearchStruct{
		User:          "",
		ID:            strings.Replace(uuid.New().String(), "-", "", -1),
		Seeking:       "",
		Proximate:     "",
		LemmaOne:      "",
		LemmaTwo:      "",
		InitSum:       "",
		Summary:       "",
		ProxScope:     "",
		ProxType:      "",
		ProxDist:      0,
		HasLemmaBoxA:  false,
		HasPhraseBoxA: false,
		IsActive:      false,
		OneHit:        false,
		Twobox:        false,
		NotNear:       false,
		SkgRewritten:  false,
		Type:          "",
		PhaseNum:      0,
		SrchColumn:    vv.DEFAULTCOLUMN,
		SrchSyntax:    vv.DEFAULTQUERYSYNTAX,
		OrderBy:       vv.ORDERBY,
		CurrentLimit:  vv.FIRSTSEARCHLIM,
		OriginalLimit: vv.FIRSTSEARCHLIM,
		SkgSlice:      nil,
		PrxSlice:      nil,
		SearchIn:      str.SearchIncExl{},
		SearchEx:      str.SearchIncExl{},
		Queries:       nil,
		Results:       str.WorkLineBundle{},
		Launched:      time.Now(),
		TTName:        strings.Replace(uuid.New().String(), "-", "", -1),
		SearchSize:    0,
		TableSize:     0,
	}

	InsertNewContextIntoSS(&s)

	s.WSID = s.ID
	s.StoredSession = lnch.MakeDefaultSession(s.ID)
	return s
}

// CloneSearch - make a copy of a search with results and queries, inter alia, ripped out
func CloneSearch(f *str.SearchStruct, iteration int) str.SearchStruct {
	// note that the clone shares the WSID of the original: progress for the second pass reports
	// into the registry entry that the status checker is already watching

	oid := strings.Replace(f.ID, "_pt2", "", -1) // so a pt3 does not look like "_pt2_pt3"
	id := fmt.Sprintf("%s_pt%d", oid, iteration)

	clone := str.SearchStruct{
		User:          f.User,
		IPAddr:        f.IPAddr,
		ID:            id,
		WSID:          f.WSID,
		Seeking:       f.Seeking,
		Proximate:     f.Proximate,
		LemmaOne:      f.LemmaOne,
		LemmaTwo:      f.LemmaTwo,
		InitSum:       f.InitSum,
		Summary:       f.Summary,
		ProxScope:     f.ProxScope,
		ProxType:      f.ProxType,
		ProxDist:      f.ProxDist,
		HasLemmaBoxA:  f.HasLemmaBoxA,
		HasLemmaBoxB:  f.HasLemmaBoxB,
		HasPhraseBoxA: f.HasPhraseBoxA,
		HasPhraseBoxB: f.HasPhraseBoxB,
		IsLemmAndPhr:  f.IsLemmAndPhr,
		OneHit:        f.OneHit,
		Twobox:        f.Twobox,
		NotNear:       f.NotNear,
		SkgRewritten:  f.SkgRewritten,
		Type:          f.Type,
		PhaseNum:      iteration,
		SrchColumn:    f.SrchColumn,
		SrchSyntax:    f.SrchSyntax,
		OrderBy:       f.OrderBy,
		CurrentLimit:  f.CurrentLimit,
		OriginalLimit: f.OriginalLimit,
		SkgSlice:      []string{},
		PrxSlice:      []string{},
		SearchIn:      str.SearchIncExl{},
		SearchEx:      str.SearchIncExl{},
		Queries:       []str.PrerolledQuery{},
		Results:       str.WorkLineBundle{},
		Launched:      f.Launched,
		TTName:        strings.Replace(uuid.New().String(), "-", "", -1),
		SearchSize:    f.SearchSize,
		TableSize:     f.TableSize,
		ExtraMsg:      f.ExtraMsg,
		StoredSession: f.StoredSession,
		RealIP:        f.RealIP,
		IsActive:      f.IsActive,
	}

	InsertNewContextIntoSS(&clone)

	vlt.ProgressIteration(clone.WSID, clone.PhaseNum)

	return clone
}

func InsertNewContextIntoSS(ss *str.SearchStruct) {
	ss.Context, ss.CancelFnc = context.WithCancel(context.Background())
}

// badsearch - something went wrong mid-pass; return an empty search that shows a message
func badsearch(msg string) str.SearchStruct {
	s := BuildHollowSearch()
	s.ExtraMsg = msg
	return s
}
