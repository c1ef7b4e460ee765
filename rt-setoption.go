//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"golang.org/x/exp/slices"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RtSetOption - modify the session in light of the selection made
func RtSetOption(c echo.Context) error {
	const (
		FAIL1 = "RtSetOption() was given bad input: %s"
		FAIL2 = "RtSetOption() hit an impossible case"
	)
	user := vlt.ReadUUIDCookie(c)
	optandval := c.Param("opt")
	parsed := strings.Split(optandval, "/")

	if len(parsed) != 2 {
		Msg.WARN(fmt.Sprintf(FAIL1, optandval))
		return c.String(http.StatusOK, "")
	}

	opt := parsed[0]
	val := parsed[1]

	ynoptionlist := []string{"greekcorpus", "latincorpus", "papyruscorpus", "inscriptioncorpus", "christiancorpus",
		"rawinputstyle", "onehit", "spuria", "incerta", "varia"}

	s := vlt.AllSessions.GetSess(user)

	modifyglobalmapsifneeded := func(cp string, y bool) {
		// this is a "laggy" click: something comparable to the startup initialization time
		// if you call it via "go modifyglobalmapsifneeded()" the lag vanishes: nobody will search <.5s later, right?
		if y && !mps.LoadedCorp[cp] {
			start := time.Now()
			// append to the master work map
			mps.AllWorks = mps.MapNewWorkCorpus(cp, mps.AllWorks)
			// append to the master author map
			mps.AllAuthors = mps.MapNewAuthorCorpus(cp, mps.AllAuthors)
			// re-populateglobalmaps
			mps.RePopulateGlobalMaps()
			d := fmt.Sprintf("modifyglobalmapsifneeded(): %.3fs", time.Now().Sub(start).Seconds())
			Msg.PEEK(d)
		}
	}

	if slices.Contains(ynoptionlist, opt) {
		valid := []string{"yes", "no"}
		if slices.Contains(valid, val) {
			var b bool
			if val == "yes" {
				b = true
			} else {
				b = false
			}
			switch opt {
			case "greekcorpus":
				s.ActiveCorp[vv.GREEKCORP] = b
				go modifyglobalmapsifneeded(vv.GREEKCORP, b)
			case "latincorpus":
				s.ActiveCorp[vv.LATINCORP] = b
				go modifyglobalmapsifneeded(vv.LATINCORP, b)
			case "papyruscorpus":
				s.ActiveCorp[vv.PAPYRUSCORP] = b
				go modifyglobalmapsifneeded(vv.PAPYRUSCORP, b)
			case "inscriptioncorpus":
				s.ActiveCorp[vv.INSCRIPTCORP] = b
				go modifyglobalmapsifneeded(vv.INSCRIPTCORP, b)
			case "christiancorpus":
				s.ActiveCorp[vv.CHRISTINSC] = b
				go modifyglobalmapsifneeded(vv.CHRISTINSC, b)
			case "rawinputstyle":
				s.RawInput = b
			case "onehit":
				s.OneHit = b
			case "spuria":
				s.SpuriaOK = b
			case "incerta":
				s.IncertaOK = b
			case "varia":
				s.VariaOK = b
			default:
				Msg.WARN(FAIL2)
			}
		}
	}

	valoptionlist := []string{"nearornot", "searchscope", "sortorder"}
	if slices.Contains(valoptionlist, opt) {
		switch opt {
		case "nearornot":
			valid := []string{"near", "notnear"}
			if slices.Contains(valid, val) {
				s.NearOrNot = val
			}
		case "searchscope":
			valid := []string{"lines", "words"}
			if slices.Contains(valid, val) {
				s.SearchScope = val
			}
		case "sortorder":
			valid := []string{"shortname", "converted_date", "provenance", "universalid"}
			if slices.Contains(valid, val) {
				s.SortHitsBy = val
			}
		default:
			Msg.WARN(FAIL2)
		}
	}

	spinoptionlist := []string{"maxresults", "linesofcontext", "browsercontext", "proximity"}
	if slices.Contains(spinoptionlist, opt) {
		intval, e := strconv.Atoi(val)
		if e == nil {
			switch opt {
			case "maxresults":
				if intval < vv.MAXHITLIMIT {
					s.HitLimit = intval
				} else {
					s.HitLimit = vv.MAXHITLIMIT
				}
			case "linesofcontext":
				if intval < vv.MAXLINESHITCONTEXT {
					s.HitContext = intval
				} else {
					s.HitContext = vv.MAXLINESHITCONTEXT
				}
			case "browsercontext":
				if intval < vv.MAXBROWSERCONTEXT {
					s.BrowseCtx = intval
				} else {
					s.BrowseCtx = vv.MAXBROWSERCONTEXT
				}
			case "proximity":
				if 1 <= intval && intval <= vv.MAXDISTANCE {
					s.Proximity = intval
				} else if intval < 1 {
					s.Proximity = 1
				} else {
					s.Proximity = vv.MAXDISTANCE
				}
			default:
				Msg.WARN(FAIL2)
			}
		}
	}

	dateoptionlist := []string{"earliestdate", "latestdate"}
	if slices.Contains(dateoptionlist, opt) {
		intval, e := strconv.Atoi(val)
		if e == nil {
			switch opt {
			case "earliestdate":
				if intval > vv.MAXDATE {
					s.Earliest = fmt.Sprintf("%d", vv.MAXDATE)
				} else if intval < vv.MINDATE {
					s.Earliest = fmt.Sprintf("%d", vv.MINDATE)
				} else {
					s.Earliest = val
				}
			case "latestdate":
				if intval > vv.MAXDATE {
					s.Latest = fmt.Sprintf("%d", vv.MAXDATE)
				} else if intval < vv.MINDATE {
					s.Latest = fmt.Sprintf("%d", vv.MINDATE)
				} else {
					s.Latest = val
				}
			default:
				Msg.WARN(FAIL2)
			}
		}

		ee, e1 := strconv.Atoi(s.Earliest)
		ll, e2 := strconv.Atoi(s.Latest)
		if e1 != nil {
			s.Earliest = vv.MINDATESTR
		}
		if e2 != nil {
			s.Latest = vv.MAXDATESTR
		}
		if e1 == nil && e2 == nil {
			if ee > ll {
				s.Earliest = s.Latest
			}
		}
	}

	vlt.AllSessions.InsertSess(s)
	return c.String(http.StatusOK, "")
}
