//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/search"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// JSStruct - for generating a specific ultra-boring brand of JSON that jQuery loves
type JSStruct struct {
	V string `json:"value"`
}

// tojsstructslice - []string -> []JSStruct
func tojsstructslice(ss []string) []JSStruct {
	jss := make([]JSStruct, len(ss))
	for i := 0; i < len(ss); i++ {
		jss[i] = JSStruct{ss[i]}
	}
	return jss
}

// RtGetJSSession - return the JSON for the session values for parsing by client JS
func RtGetJSSession(c echo.Context) error {
	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)

	type JSO struct {
		Browsercontext    string `json:"browsercontext"`
		Christiancorpus   string `json:"christiancorpus"`
		Earliestdate      string `json:"earliestdate"`
		Greekcorpus       string `json:"greekcorpus"`
		Incerta           string `json:"incerta"`
		Inscriptioncorpus string `json:"inscriptioncorpus"`
		Latestdate        string `json:"latestdate"`
		Latincorpus       string `json:"latincorpus"`
		Linesofcontext    string `json:"linesofcontext"`
		Maxresults        string `json:"maxresults"`
		Nearornot         string `json:"nearornot"`
		Onehit            string `json:"onehit"`
		Papyruscorpus     string `json:"papyruscorpus"`
		Proximity         string `json:"proximity"`
		Rawinputstyle     string `json:"rawinputstyle"`
		Searchscope       string `json:"searchscope"`
		Sortorder         string `json:"sortorder"`
		Spuria            string `json:"spuria"`
		Varia             string `json:"varia"`
	}

	t2y := func(b bool) string {
		if b {
			return "yes"
		} else {
			return "no"
		}
	}

	i2s := func(i int) string { return fmt.Sprintf("%d", i) }

	var jso JSO
	jso.Browsercontext = i2s(s.BrowseCtx)
	jso.Christiancorpus = t2y(s.ActiveCorp[vv.CHRISTINSC])
	jso.Earliestdate = s.Earliest
	jso.Greekcorpus = t2y(s.ActiveCorp[vv.GREEKCORP])
	jso.Incerta = t2y(s.IncertaOK)
	jso.Inscriptioncorpus = t2y(s.ActiveCorp[vv.INSCRIPTCORP])
	jso.Latestdate = s.Latest
	jso.Latincorpus = t2y(s.ActiveCorp[vv.LATINCORP])
	jso.Linesofcontext = i2s(s.HitContext)
	jso.Maxresults = i2s(s.HitLimit)
	jso.Nearornot = s.NearOrNot
	jso.Onehit = t2y(s.OneHit)
	jso.Papyruscorpus = t2y(s.ActiveCorp[vv.PAPYRUSCORP])
	jso.Proximity = i2s(s.Proximity)
	jso.Rawinputstyle = t2y(s.RawInput)
	jso.Searchscope = s.SearchScope
	jso.Sortorder = s.SortHitsBy
	jso.Spuria = t2y(s.SpuriaOK)
	jso.Varia = t2y(s.VariaOK)

	return c.JSONPretty(http.StatusOK, jso, vv.JSONINDENT)
}

// RtGetJSWorksOf - /get/json/worksof/lt0972 --> [{"value": "Satyrica (w001)"}, {"value": "Satyrica, fragmenta (w002)"}]
func RtGetJSWorksOf(c echo.Context) error {
	const (
		TEMPL = "%s (%s)"
	)

	id := c.Param("id")
	if _, ok := mps.AllAuthors[id]; !ok {
		return emptyjsreturn(c)
	}
	wl := mps.AllAuthors[id].WorkList

	wks := make([]string, len(wl))
	for i := 0; i < len(wl); i++ {
		w := wl[i]
		wks[i] = fmt.Sprintf(TEMPL, mps.AllWorks[w].Title, w[vv.LENGTHOFAUTHORID:vv.LENGTHOFAUTHORID+4])
	}

	slices.Sort(wks)
	out := tojsstructslice(wks)

	return c.JSONPretty(http.StatusOK, out, vv.JSONINDENT)
}

// RtGetJSWorksStruct - lt0474/058 --> {"totallevels": 4, "level": 3, "label": "book", "low": "1", "high": "3", "range": ["1", "2", "3"]}
func RtGetJSWorksStruct(c echo.Context) error {
	// that is a top: interiors look like "1|3" for "book one", "subheading_val 3"

	locus := c.Param("locus")
	parsed := strings.Split(locus, "/")

	if len(parsed) < 2 || len(parsed) > 3 {
		return emptyjsreturn(c)
	}
	wkid := parsed[0] + "w" + parsed[1]

	if len(parsed) == 2 {
		parsed = append(parsed, "")
	}

	if _, ok := mps.AllWorks[wkid]; !ok {
		return emptyjsreturn(c)
	}

	locc := strings.Split(parsed[2], "|")
	lvls := search.FindValidLevelValues(mps.AllWorks[wkid], locc)

	return c.JSONPretty(http.StatusOK, lvls, vv.JSONINDENT)
}

// RtGetJSSearchlist - report the search list contents to the browser
func RtGetJSSearchlist(c echo.Context) error {
	const (
		WORKTMPL  = `%s, <span class="italic">%s</span> [%d words]`
		SPILLOVER = `<br>(and <span class="emph">%d</span> additional works)`
		SUMMARY   = `<br><span class="emph">%d</span> total words`
		REG       = `(?P<auth>......)_FROM_(?P<start>\d+)_TO_(?P<stop>\d+)`
	)

	user := vlt.ReadUUIDCookie(c)
	sess := vlt.AllSessions.GetSess(user)

	m := message.NewPrinter(language.English)
	sl := search.SessionIntoSearchlist(sess)

	totalwords := 0

	var wkk []string
	for _, a := range sl.Inc.Authors {
		for _, w := range mps.AllAuthors[a].WorkList {
			cf := m.Sprintf(WORKTMPL, mps.AllAuthors[a].Cleaname, mps.AllWorks[w].Title, mps.AllWorks[w].WdCount)
			wkk = append(wkk, cf)
			totalwords += mps.AllWorks[w].WdCount
		}
	}

	for _, w := range sl.Inc.Works {
		thiswk := mps.AllWorks[w]
		cf := m.Sprintf(WORKTMPL, mps.DbWkMyAu(thiswk).Cleaname, thiswk.Title, thiswk.WdCount)
		wkk = append(wkk, cf)
		totalwords += thiswk.WdCount
	}

	pattern := regexp.MustCompile(REG)
	for _, p := range sl.Inc.Passages {
		cit, count := searchlistpassages(pattern, p)
		wkk = append(wkk, cit)
		totalwords += count
	}

	for _, p := range sl.Excl.Passages {
		cit, count := searchlistpassages(pattern, p)
		wkk = append(wkk, cit+"[EXCLUDED]")
		totalwords -= count
	}

	if len(wkk) > vv.MAXSEARCHINFOLISTLEN {
		diff := len(wkk) - vv.MAXSEARCHINFOLISTLEN
		wkk = wkk[0:vv.MAXSEARCHINFOLISTLEN]
		wkk = append(wkk, m.Sprintf(SPILLOVER, diff))
	}

	wkk = append(wkk, m.Sprintf(SUMMARY, totalwords))

	ht := strings.Join(wkk, "<br>\n")
	var j JSStruct
	j.V = ht

	return c.JSONPretty(http.StatusOK, j, vv.JSONINDENT)
}

// searchlistpassages - cite a passage selection and count the words inside it
func searchlistpassages(pattern *regexp.Regexp, p string) (string, int) {
	const (
		PSGTEMPL = `%s, <span class="italic">%s</span> %s - %s [%d words]`
	)
	// "gr0032_FROM_11313_TO_11843"
	m := message.NewPrinter(language.English)
	subs := pattern.FindStringSubmatch(p)
	au := subs[pattern.SubexpIndex("auth")]
	st, _ := strconv.Atoi(subs[pattern.SubexpIndex("start")])
	sp, _ := strconv.Atoi(subs[pattern.SubexpIndex("stop")])
	f := db.GrabOneLine(au, st)
	l := db.GrabOneLine(au, sp)
	s := search.BuildHollowSearch()
	s.SearchIn.Passages = []string{p}
	search.SSBuildQueries(&s)
	search.SearchAndInsertResults(&s)
	count := 0
	for i := 0; i < s.Results.Len(); i++ {
		count += len(strings.Split(s.Results.Lines[i].Stripped, " "))
	}
	ct := m.Sprintf(PSGTEMPL, mps.AllAuthors[au].Cleaname, mps.AllWorks[f.WkUID].Title, f.Citation(), l.Citation(), count)
	return ct, count
}

// RtGetEmptyGet - to stave off 404s
func RtGetEmptyGet(c echo.Context) error {
	var j JSStruct
	j.V = "[the request was empty; no data returned]"

	return c.JSONPretty(http.StatusOK, j, vv.JSONINDENT)
}
