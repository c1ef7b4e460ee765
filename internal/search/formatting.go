//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/p-laskaris/AristarchosGoServer/internal/gen"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MUREPLACE   = `<span class="match">$0</span>` // note $0 vs $1
	HYPHREPLACE = `&nbsp;&nbsp;(&nbsp;match:&nbsp;<span class="match">%s</span>&nbsp;)`
)

// FormatNoContextResults - build zero context search results table
func FormatNoContextResults(ss *str.SearchStruct) str.SearchOutputJSON {
	// EXAMPLE
	// <tr class="nthrow">
	//			<td>
	//				<span class="findnumber">[3]</span>&nbsp;
	//				<span class="foundauthor">Theophilus</span>,&nbsp; <span class="foundwork">Ad Autolycum</span>: <browser id="index/gr1725/001/3"><span class="foundlocus">1.1.2</span></browser> <br>
	//			</td>
	//			<td class="leftpad">
	//				<span class="foundtext">ἔπαινον πρὸϲ κενὴν δόξαν ἀθλίοιϲ ἀνθρώποιϲ ἔχουϲι τὸν νοῦν κατε-</span>
	//			</td>
	//		</tr>

	const (
		TABLEROW = `
		<tr class="{{.TRClass}}">
			<td>
				<span class="findnumber">[{{.FindNumber}}]</span>&nbsp;{{.FindDate}}{{.FindCity}}
				{{.FindLocus}}
			</td>
			<td class="leftpad">
				<span class="foundtext">{{.TheLine}}</span>
			</td>
		</tr>`

		DATES    = `[<span class="date">%s</span>]`
		SPSUBBER = `<spcauthor">%s</span>,&nbsp;<spcwork">%s</span>: <browser_id="%s"><spclocus">%s</span></browser>`
	)

	type TRTempl struct {
		TRClass    string
		FindNumber int
		FindDate   string
		FindCity   string
		FindLocus  string
		TheLine    string
	}

	searchterm := gethighlighter(ss)

	trt, e := template.New("trt").Parse(TABLEROW)
	Msg.EC(e)

	var b bytes.Buffer

	rr := ss.Results.YieldAll()
	i := 0
	for r := range rr {
		r.PurgeMetadata()
		// highlight the search term; the hyphenated line might hold the real match
		if searchterm.MatchString(r.MarkedUp) {
			r.MarkedUp = searchterm.ReplaceAllString(r.MarkedUp, MUREPLACE)
		} else {
			if searchterm.MatchString(r.Hyphenated) {
				r.MarkedUp += fmt.Sprintf(HYPHREPLACE, r.Hyphenated)
			}
		}

		mu := formateditorialbrackets(r.MarkedUp)

		rc := ""
		if i%3 == 2 {
			rc = "nthrow"
		} else {
			rc = "regular"
		}

		au := mps.DbWlnMyAu(&r).Shortname
		wk := mps.DbWlnMyWk(&r).Title
		lk := r.BuildHyperlink()
		lc := strings.Join(r.FindLocus(), ".")

		// the "spc" and "browser_id" placeholders keep AvoidLongLines() from
		// counting the eventual span markup against the title length
		ci := fmt.Sprintf(SPSUBBER, au, wk, lk, lc)
		ci = gen.AvoidLongLines(ci, vv.MAXTITLELENGTH)
		ci = strings.Replace(ci, "<spc", `<span class="found`, -1)
		ci = strings.Replace(ci, `browser_id`, `browser id`, -1)

		tr := TRTempl{
			TRClass:    rc,
			FindNumber: i + 1,
			FindDate:   FormatInscriptionDates(DATES, &r),
			FindCity:   formatinscriptionplaces(&r),
			FindLocus:  ci,
			TheLine:    mu,
		}

		err := trt.Execute(&b, tr)
		Msg.EC(err)
		i++
	}

	var out str.SearchOutputJSON
	out.JS = fmt.Sprintf(vv.BROWSERJS, "browser")
	out.Title = ss.Seeking
	out.Image = ""
	out.Searchsummary = formatfinalsearchsummary(ss)

	out.Found = "<tbody>" + b.String() + "</tbody>"
	if lnch.Config.ZapLunates {
		out.Found = gen.DeLunate(out.Found)
	}

	return out
}

type ResultPassageLine struct {
	Locus           string
	Contents        string
	Hyphenated      string
	ContinuingStyle string
	IsHighlight     bool
}

// FormatWithContextResults - build n-lines of context search results as a list
func FormatWithContextResults(thesearch *str.SearchStruct) str.SearchOutputJSON {
	// profiling will show that the bulk of your time is spent on (in descending order):
	// LemmaIntoRegexSlice(), regexp.Compile(strings.Join(re, "|")), and highlightsearchterm()

	// EXAMPLE:
	// <locus>
	//			<span class="findnumber">[1]</span>&nbsp;
	//			<span class="foundauthor">Caelius, Marcus Rufus</span>,&nbsp;<span class="foundwork">orationes</span>
	//			<browser id="index/lt0444/002/1"><span class="foundlocus">17.t</span></browser>
	// </locus>

	const (
		FINDTEMPL = `
		<locus>
			<span class="findnumber">[{{.Findnumber}}]</span>&nbsp;{{.FindDate}}{{.FindCity}}
			<span class="foundauthor">{{.Foundauthor}}</span>,&nbsp;<span class="foundwork">{{.Foundwork}}</span>
			<browser id="{{.FindURL}}"><span class="foundlocus">{{.FindLocus}}</span></browser>
		</locus>
		{{.LocusBody}}`

		FOUNDLINE = `<span class="locus">%s</span>&nbsp;<span class="foundtext">%s</span><br>
		`
		PSGTEMPL    = `%s_FROM_%d_TO_%d`
		URT         = `index/%s/%s/%d`
		DTT         = `[<span class="date">%s</span>]`
		HIGHLIGHTER = `<span class="highlight">%s</span>`
		SNIP        = `✃✃✃`
	)
	thesession := vlt.AllSessions.GetSess(thesearch.User)

	type PsgFormattingTemplate struct {
		Findnumber  int
		Foundauthor string
		Foundwork   string
		FindDate    string
		FindURL     string
		FindLocus   string
		FindCity    string
		RawCTX      []str.DbWorkline
		CookedCTX   []ResultPassageLine
		LocusBody   string
	}

	// gather all the lines you need in one shot: much faster than SimpleContextGrabber() in a loop
	// turn it into a new search where any character at all is enough to yield a hit: ""
	ctxsearch := CloneSearch(thesearch, 3)
	ctxsearch.Results = thesearch.Results
	ctxsearch.Seeking = ""
	ctxsearch.LemmaOne = ""
	ctxsearch.Proximate = ""
	ctxsearch.LemmaTwo = ""
	ctxsearch.CurrentLimit = (thesearch.CurrentLimit * thesession.HitContext) * 3

	context := thesession.HitContext / 2

	ctxsearch.SearchIn.Passages = make([]string, ctxsearch.Results.Len())
	ii := 0
	rr := ctxsearch.Results.YieldAll()
	for r := range rr {
		low := r.TbIndex - context
		high := r.TbIndex + context
		if low < 1 {
			// avoid "gr0258_FROM_-1_TO_3"
			low = 1
		}
		ctxsearch.SearchIn.Passages[ii] = fmt.Sprintf(PSGTEMPL, r.AuID(), low, high)
		ii++
	}

	ctxsearch.Results.Lines = []str.DbWorkline{}
	SSBuildQueries(&ctxsearch)
	SearchAndInsertResults(&ctxsearch)

	// now you have all the lines you will ever need
	linemap := make(map[string]str.DbWorkline)

	rr = ctxsearch.Results.YieldAll()
	for r := range rr {
		linemap[r.BuildHyperlink()] = r
	}

	// iterate over the results to build the raw core data

	allpassages := make([]PsgFormattingTemplate, thesearch.Results.Len())

	rr = thesearch.Results.YieldAll()
	kk := 0
	for r := range rr {
		var psg PsgFormattingTemplate
		psg.Findnumber = kk + 1
		psg.Foundauthor = mps.DbWlnMyAu(&r).Name
		psg.Foundwork = mps.DbWlnMyWk(&r).Title
		psg.FindURL = r.BuildHyperlink()
		psg.FindLocus = strings.Join(r.FindLocus(), ".")
		psg.FindDate = FormatInscriptionDates(DTT, &r)
		psg.FindCity = formatinscriptionplaces(&r)

		for j := r.TbIndex - context; j <= r.TbIndex+context; j++ {
			url := fmt.Sprintf(URT, r.AuID(), r.WkID(), j)
			psg.RawCTX = append(psg.RawCTX, linemap[url])
		}

		psg.CookedCTX = make([]ResultPassageLine, len(psg.RawCTX))
		for j := 0; j < len(psg.RawCTX); j++ {
			c := ResultPassageLine{}
			c.Locus = strings.Join(psg.RawCTX[j].FindLocus(), ".")

			if psg.RawCTX[j].BuildHyperlink() == psg.FindURL {
				c.IsHighlight = true
			} else {
				c.IsHighlight = false
			}
			psg.RawCTX[j].PurgeMetadata()
			c.Contents = psg.RawCTX[j].MarkedUp
			c.Hyphenated = psg.RawCTX[j].Hyphenated
			psg.CookedCTX[j] = c
		}
		allpassages[kk] = psg
		kk++
	}

	// fix the unmatched spans
	for _, p := range allpassages {
		if len(p.CookedCTX) == 0 {
			continue
		}

		// at the top
		p.CookedCTX[0].Contents = unbalancedspancleaner(p.CookedCTX[0].Contents)

		// across the whole
		block := make([]string, len(p.CookedCTX))
		for j, c := range p.CookedCTX {
			block[j] = c.Contents
		}
		whole := strings.Join(block, SNIP)

		whole = TextBlockCleaner(whole)

		// reassemble
		block = strings.Split(whole, SNIP)
		for i, b := range block {
			p.CookedCTX[i].Contents = b
		}
	}

	// highlight the search term: this includes the hyphenated_line issue
	searchterm := gethighlighter(thesearch)

	for _, p := range allpassages {
		for i, r := range p.CookedCTX {
			if r.IsHighlight && searchterm != nil {
				p.CookedCTX[i].Contents = fmt.Sprintf(HIGHLIGHTER, p.CookedCTX[i].Contents)
				highlightsearchterm(searchterm, &p.CookedCTX[i])
			}
			if len(thesearch.LemmaTwo) > 0 {
				// look for the proximate term
				re := LemmaIntoRegexSlice(thesearch.LemmaTwo)
				pat, e := regexp.Compile(strings.Join(re, "|"))
				if e != nil {
					pat = regexp.MustCompile("FAILED_FIND_NOTHING")
					Msg.WARN(fmt.Sprintf("FormatWithContextResults() could not compile the following: %s", strings.Join(re, "|")))
				}
				highlightsearchterm(pat, &p.CookedCTX[i])
			}
			if len(thesearch.Proximate) > 0 {
				// look for the proximate term
				pat := SearchTermFinder(thesearch.Proximate)
				highlightsearchterm(pat, &p.CookedCTX[i])
			}
		}
	}

	tmpl, e := template.New("tr").Parse(FINDTEMPL)
	Msg.EC(e)

	var b bytes.Buffer
	for _, p := range allpassages {
		lines := make([]string, len(p.CookedCTX))
		for j, l := range p.CookedCTX {
			c := fmt.Sprintf(FOUNDLINE, l.Locus, l.Contents)
			lines[j] = c
		}
		p.LocusBody = strings.Join(lines, "")
		err := tmpl.Execute(&b, p)
		Msg.EC(err)
	}

	// output

	var out str.SearchOutputJSON
	out.JS = fmt.Sprintf(vv.BROWSERJS, "browser")
	out.Title = RestoreWhiteSpace(thesearch.Seeking)
	out.Image = ""
	out.Searchsummary = formatfinalsearchsummary(thesearch)
	out.Found = b.String()

	if lnch.Config.ZapLunates {
		out.Found = gen.DeLunate(out.Found)
	}

	vlt.ProgressDelete(ctxsearch.WSID)
	return out
}

func formatfinalsearchsummary(s *str.SearchStruct) string {
	// ex:
	//        Sought <span class="sought">»ἡμέρα«</span>
	//        <br>
	//        Searched 49,230 works and found 200 passages (0.12s)
	//        <br>
	//        Sorted by author name
	//        <!-- unlimited hits per author -->
	//        <br>
	//        <!-- dates did not matter -->
	//        [Search suspended: result cap reached.]

	const (
		TEMPL = `
		%s
		%s
		<br>
		Searched %d works and found %d passages (%ss)
		<br>
		Sorted by %s
		%s
		<br>
		%s
		%s
	`
		BETW   = "Searched between %s and %s<br>"
		DDM    = "<!-- dates did not matter -->"
		NOCAP  = "<!-- did not hit the results cap -->"
		YESCAP = `<span class="smallerthannormal">[Search suspended: result cap reached.]</span>`
		INFAU  = "<!-- unlimited hits per author -->"
		ONEAU  = `<br><span class="smaller">(only one hit allowed per author table)</span>`
	)

	m := message.NewPrinter(language.English)
	sess := vlt.AllSessions.GetSess(s.User)
	var dr string
	if sess.Earliest != vv.MINDATESTR || sess.Latest != vv.MAXDATESTR {
		a := gen.FormatBCEDate(sess.Earliest)
		b := gen.FormatBCEDate(sess.Latest)
		dr = fmt.Sprintf(BETW, a, b)
	} else {
		dr = DDM
	}

	// a phrase search can pare the raw hits back below the limit after capping
	hitcap := NOCAP
	if s.HitMax || s.Results.Len() == s.CurrentLimit {
		hitcap = YESCAP
	}

	oh := INFAU
	if s.OneHit {
		oh = ONEAU
	}

	var so string

	switch sess.SortHitsBy {
	case "shortname":
		so = "author name"
	case "converted_date":
		so = "date"
	case "provenance":
		so = "work location"
	case "universalid":
		so = "ID"
	}

	el := fmt.Sprintf("%.2f", time.Since(s.Launched).Seconds())
	sum := m.Sprintf(TEMPL, s.ExtraMsg, s.InitSum, s.SearchSize, s.Results.Len(), el, so, oh, dr, hitcap)
	return sum
}

// highlightsearchterm - html markup for the search term in the line so it can jump out at you
func highlightsearchterm(pattern *regexp.Regexp, line *ResultPassageLine) {
	if pattern.MatchString(line.Contents) {
		line.Contents = pattern.ReplaceAllString(line.Contents, MUREPLACE)
	} else {
		// might be in the hyphenated line
		if pattern.MatchString(line.Hyphenated) {
			line.Contents += fmt.Sprintf(HYPHREPLACE, line.Hyphenated)
		}
	}
}

// FormatInscriptionDates - show the years for inscriptions
func FormatInscriptionDates(template string, dbw *str.DbWorkline) string {
	datestring := ""
	fc := dbw.FindCorpus()
	dated := fc == vv.INSCRIPTCORP || fc == vv.CHRISTINSC || fc == vv.PAPYRUSCORP
	if dated {
		cd := gen.IntToBCE(mps.AllWorks[dbw.WkUID].ConvDate)
		if cd == "2500 C.E." {
			cd = "??? BCE/CE"
		}
		datestring = fmt.Sprintf(template, strings.Replace(cd, ".", "", -1))
	}
	return datestring
}

// formatinscriptionplaces - show the places for inscriptions
func formatinscriptionplaces(dbw *str.DbWorkline) string {
	const (
		PLACER = ` [<span class="rust">%s</span>] `
	)

	placestring := ""
	fc := dbw.FindCorpus()
	placed := fc == vv.INSCRIPTCORP || fc == vv.CHRISTINSC || fc == vv.PAPYRUSCORP
	if placed {
		placestring = fmt.Sprintf(PLACER, mps.AllWorks[dbw.WkUID].Prov)
	}
	return placestring
}

// TextBlockCleaner - address multi-line formatting challenges by running a suite of clean-ups
func TextBlockCleaner(html string) string {
	// do it early and in this order
	// presupposes the snippers are in there: "✃✃✃"
	html = unbalancedspancleaner(html)
	html = formateditorialbrackets(html)
	html = formatmultilinespans(html)

	return html
}

// unbalancedspancleaner - helper for TextBlockCleaner()
func unbalancedspancleaner(html string) string {
	// 	unbalanced spans inside of result chunks: ask for 4 lines of context and search for »ἀδύνατον γ[άὰ]ρ«
	//
	//	the first line of context can close spans that were opened in a previous line;
	//	the last line of the context can open a span that closes in a line which does not appear,
	//	and that span remains open: the next results turn bold + italic + ...
	//
	//	the solution:
	//		open anything that needs opening: this needs to be done with the first line
	//		close anything left hanging: this needs to be done with the whole passage

	const (
		SPANOPEN  = `<span class="htmlbalancingsupplement">`
		SPANCLOSE = `</span>`
	)

	op := regexp.MustCompile("<span")
	cl := regexp.MustCompile("</span>")

	opened := len(op.FindAllString(html, -1))
	closed := len(cl.FindAllString(html, -1))

	if closed > opened {
		for i := 0; i < closed-opened; i++ {
			html = SPANOPEN + html
		}
	}

	if opened > closed {
		for i := 0; i < opened-closed; i++ {
			html = html + SPANCLOSE
		}
	}
	return html
}

// don't let regex compilation get looped...
var (
	spkr    = regexp.MustCompile("<speaker>\\[(.*?)</speaker>")
	esbboth = regexp.MustCompile("\\[(.*?)]")
	erbboth = regexp.MustCompile("\\((.*?)\\)")
	eabboth = regexp.MustCompile("⟨(.*?)⟩")
	ecbboth = regexp.MustCompile("\\{(.*?)}")
)

// formateditorialbrackets - helper for TextBlockCleaner()
func formateditorialbrackets(html string) string {
	// sample:
	// [<span class="editorialmarker_squarebrackets">ἔδοχϲεν τε͂ι βολε͂ι καὶ το͂ι</span>]

	// special cases:
	// [a] no "open" or "close" bracket at the head/tail of a line
	// [b] continuing from a previous line: no brackets here, but a span should be inserted

	const (
		SPEAK  = `<speaker>$1</speaker>`
		SQUARE = `[<span class="editorialmarker_squarebrackets">$1</span>]`
		ROUND  = `(<span class="editorialmarker_roundbrackets">$1</span>)`
		ANGLE  = `⟨<span class="editorialmarker_angledbrackets">$1</span>⟩`
		CURLY  = `{<span class="editorialmarker_curlybrackets">$1</span>}`
	)

	html = spkr.ReplaceAllString(html, SPEAK)
	html = esbboth.ReplaceAllString(html, SQUARE)
	html = erbboth.ReplaceAllString(html, ROUND)
	html = eabboth.ReplaceAllString(html, ANGLE)
	html = ecbboth.ReplaceAllString(html, CURLY)

	return html
}

func formatmultilinespans(html string) string {
	// a span opened in one line of a passage block can close many lines later;
	// walk the block and re-open/close at the line boundaries so each line is self-contained

	// this can get too "greedy" in the fragments of the tragedians where lines end "[ " and then
	// the next is not " ]"; the irregularities in the source data make this basically insoluble,
	// but this form gets more things right than wrong

	const (
		SPLT = "✃✃✃"
	)

	type spantype struct {
		open  string
		close string
	}

	st1 := spantype{"<span class=\"expanded_text\">", "</span>"}
	st2 := spantype{"<hmu_serviusformatting>", "</hmu_serviusformatting>"}
	st3 := spantype{"<span class=\"editorialmarker_squarebrackets\">", "</span>"}
	st4 := spantype{"<span class=\"editorialmarker_roundbrackets\">", "</span>"}
	st5 := spantype{"<span class=\"editorialmarker_angledbrackets\">", "</span>"}
	st6 := spantype{"<span class=\"editorialmarker_curlybrackets\">", "</span>"}

	tocheck := []spantype{st1, st2, st3, st4, st5, st6}

	spanner := func(lines []string, st spantype) []string {
		add := ""
		newlines := make([]string, len(lines))
		for i, l := range lines {
			l = add + l
			back := strings.Split(l, st.open)
			if len(back) > 1 {
				if strings.Contains(back[len(back)-1], st.close) {
					add = ""
				} else {
					add = st.open
					l = l + st.close
				}
			}
			newlines[i] = l
		}
		return newlines
	}

	htmlslc := strings.Split(html, SPLT)
	for _, c := range tocheck {
		if strings.Contains(html, c.open) {
			htmlslc = spanner(htmlslc, c)
		}
	}
	html = strings.Join(htmlslc, SPLT)
	return html
}

// gethighlighter - set regex to highlight the search term
func gethighlighter(ss *str.SearchStruct) *regexp.Regexp {
	// "s", "sp", "spa", ... would highlight inside the html itself: `<span class="xyz" ...>`
	const (
		FAILURE = "MATCH_NOTHING"
		SKIP1   = "^s$|^sp$|^spa$|^span$|^hmu$"
		SKIP2   = "|^c$|^cl$|^cla$|^clas$|^class$"
		SKIP3   = "|^a$|^as$|^ass$"
		SKIP4   = "|^l$|^la$|^lat$|^lati$|^latin$"
		SKIP    = SKIP1 + SKIP2 + SKIP3 + SKIP4
	)

	var re *regexp.Regexp

	skg := ss.Seeking
	prx := ss.Proximate

	skip := regexp.MustCompile(SKIP)
	if skip.MatchString(skg) || skip.MatchString(prx) {
		return regexp.MustCompile(FAILURE)
	}

	if ss.SkgRewritten {
		// UniversalPatternMaker() will turn "\s" into "\[sS]"; swap in a plain space first
		skg = strings.Replace(WhiteSpacer(skg, ss), "(^|\\s)", "(^| )", 1)
		skg = strings.Replace(WhiteSpacer(skg, ss), "(\\s|$)", "( |$)", 1)
		prx = strings.Replace(WhiteSpacer(prx, ss), "(^|\\s)", "(^| )", 1)
		prx = strings.Replace(WhiteSpacer(prx, ss), "(\\s|$)", "( |$)", 1)
	}

	if len(ss.Seeking) != 0 {
		re = SearchTermFinder(skg)
	} else if len(ss.LemmaOne) != 0 {
		re = lemmahighlighter(ss.LemmaOne)
	} else if len(ss.Proximate) != 0 {
		re = SearchTermFinder(prx)
	} else if len(ss.LemmaTwo) != 0 {
		re = lemmahighlighter(ss.LemmaTwo)
	} else {
		re = regexp.MustCompile(FAILURE)
	}
	return re
}

// lemmahighlighter - set regex to highlight a lemmatized search term
func lemmahighlighter(lm string) *regexp.Regexp {
	// don't let "(^|\s)τρεῖϲ(\s|$)|(^|\s)τρία(\s|$)|..."
	// turn into "(^|\[sS])[τΤ][ρῤῥῬ][εἐἑἒἓἔἕὲέἘἙἚἛἜἝΕ]ῖ[ϲσΣςϹ](\[sS]|$)|..."
	// can't send "(^|\s)" through UniversalPatternMaker()

	// abutting markup kills off some items, but adding "<" and ">" produces worse problems still

	const (
		FAIL    = "lemmahighlighter() could not compile lemma into regex"
		FAILURE = "MATCH_NOTHING"
		JOINER  = ")✃✃✃("
		SNIP    = "✃✃✃"
	)

	if _, ok := mps.AllLemm[lm]; !ok {
		return regexp.MustCompile(FAILURE)
	}

	lemm := mps.AllLemm[lm].Deriv

	whole := strings.Join(lemm, JOINER)
	st := gen.UniversalPatternMaker(whole)
	lup := strings.Split(st, SNIP)
	rec := strings.Join(lup, "|")

	r, e := regexp.Compile(rec)
	if e != nil {
		Msg.FYI(FAIL)
		return regexp.MustCompile(FAILURE)
	}
	return r
}
