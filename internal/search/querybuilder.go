//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// searchlistintoqueries() stuff should all be handled when making the selections, not here
// and everything should be in the "gr0032w002_FROM_11313_TO_11843" format

// search types
// [a] simple
// [b] simplelemma
// [c] proximate by words
// [d] proximate by lines
// [e] simple phrase
// [f] phrase and proximity

const (
	SELECTFROM = `
		SELECT wkuniversalid, index, level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value,
			marked_up_line, accented_line, stripped_line, hyphenated_words, annotations FROM %s`
	PRFXSELFRM = `
		SELECT second.wkuniversalid, second.index, second.level_05_value, second.level_04_value, second.level_03_value, second.level_02_value, second.level_01_value, second.level_00_value,
			second.marked_up_line, second.accented_line, second.stripped_line, second.hyphenated_words, second.annotations FROM`
	ASLINEBUNDLE = `
		( SELECT * FROM
			( SELECT wkuniversalid, index, level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value, marked_up_line, accented_line, stripped_line, hyphenated_words, annotations,
				concat(%s, ' ', lead(%s) OVER (ORDER BY index ASC) ) AS linebundle`
)

type queryBuilder struct {
	SelFrom   string
	WhrTrm    string
	WhrIdxInc string
	WhrIdxExc string
}

// SSBuildQueries - take a SearchStruct and convert it into a collection of PrerolledQuery
func SSBuildQueries(ss *str.SearchStruct) {
	inc := ss.SearchIn
	exc := ss.SearchEx

	if len(ss.LemmaOne) != 0 {
		ss.SkgSlice = LemmaIntoRegexSlice(ss.LemmaOne)
	} else {
		ss.SkgSlice = append(ss.SkgSlice, ss.Seeking)
	}

	// a plain phrase can go out as a search for its least common word; FindPhrasesAcrossLines() will cull the chaff
	// the linebundle window stays on: a phrase can straddle two lines with the rare word on the second of them,
	// and only the windowed query registers that hit on the first line where the reconstruction needs it
	yesphr := ss.HasPhraseBoxA
	if yesphr && len(ss.LemmaOne) == 0 {
		lct := PickLeastCommonTerm(ss.Seeking)
		if lct != "" {
			ss.SkgSlice = []string{lct}
		}
	}

	// if there are too many "in0001wXXX" type entries: requiresindextemptable()

	// au query looks like: SELECTFROM + WHERETERM + WHEREINDEX + ORDERBY&LIMIT
	// FROM gr0308 WHERE ( (index BETWEEN 138 AND 175) OR (index BETWEEN 471 AND 510) ) AND ( stripped_line ~* $1 )
	// FROM lt0917 WHERE ( (index BETWEEN 1 AND 8069) OR (index BETWEEN 8070 AND 8092) ) AND ( (index NOT BETWEEN 1431 AND 2193) ) AND ( stripped_line ~* $1 )

	// [a] figure out all bounded selections

	boundedincl := make(map[string][]str.QueryBounds)
	boundedexcl := make(map[string][]str.QueryBounds)

	// [a1] individual works included/excluded
	for _, w := range inc.Works {
		wk := mps.AllWorks[w]
		b := str.QueryBounds{Start: wk.FirstLine, Stop: wk.LastLine}
		boundedincl[wk.AuID()] = append(boundedincl[wk.AuID()], b)
	}

	for _, w := range exc.Works {
		wk := mps.AllWorks[w]
		b := str.QueryBounds{Start: wk.FirstLine, Stop: wk.LastLine}
		boundedexcl[wk.AuID()] = append(boundedexcl[wk.AuID()], b)
	}

	// [a2] individual passages included/excluded

	pattern := regexp.MustCompile(`(?P<auth>......)_FROM_(?P<start>\d+)_TO_(?P<stop>\d+)`)
	for _, p := range inc.Passages {
		// "gr0032_FROM_11313_TO_11843"
		subs := pattern.FindStringSubmatch(p)
		if subs == nil {
			continue
		}
		au := subs[pattern.SubexpIndex("auth")]
		st, _ := strconv.Atoi(subs[pattern.SubexpIndex("start")])
		sp, _ := strconv.Atoi(subs[pattern.SubexpIndex("stop")])
		b := str.QueryBounds{Start: st, Stop: sp}
		boundedincl[au] = append(boundedincl[au], b)
	}

	for _, p := range exc.Passages {
		subs := pattern.FindStringSubmatch(p)
		if subs == nil {
			continue
		}
		au := subs[pattern.SubexpIndex("auth")]
		st, _ := strconv.Atoi(subs[pattern.SubexpIndex("start")])
		sp, _ := strconv.Atoi(subs[pattern.SubexpIndex("stop")])
		b := str.QueryBounds{Start: st, Stop: sp}
		boundedexcl[au] = append(boundedexcl[au], b)
	}

	// [b] build the queries for the author tables
	idxtmpl := `(index %sBETWEEN %d AND %d)` // %s is "" or "NOT "

	// [b1] collapse inc.Authors, inc.Works, incl.Passages to find all tables in use
	// the keys to boundedincl in fact give you the answer to the latter two

	alltables := inc.Authors
	for t := range boundedincl {
		alltables = append(alltables, t)
	}

	tails := acquiretails()

	var prqq []str.PrerolledQuery
	for _, au := range alltables {
		var qb queryBuilder
		var prq str.PrerolledQuery

		// [b2a] check to see if bounded by inclusions
		if bb, found := boundedincl[au]; found {
			if len(bb) > vv.TEMPTABLETHRESHOLD {
				prq.TempTable = requiresindextemptable(au, bb, ss)
			} else {
				qb.WhrIdxInc = andorwhereclause(bb, idxtmpl, "", " OR ")
			}
		}

		// [b2b] check to see if bounded by exclusions
		if bb, found := boundedexcl[au]; found {
			if len(bb) > vv.TEMPTABLETHRESHOLD {
				// note that 200 incl + 200 excl will produce garbage; in practice you only have a ton of one of them
				prq.TempTable = requiresindextemptable(au, bb, ss)
			} else {
				qb.WhrIdxExc = andorwhereclause(bb, idxtmpl, "NOT ", " AND ")
			}
		}

		// [b3] search term might be lemmatized, hence the range

		for _, skg := range ss.SkgSlice {
			// there are fancier ways to do this, but debugging and maintaining become overwhelming...

			// map to the template items in the tails:
			// SELECTFROM + WHERETERM + WHEREINDEXINCL + WHEREINDEXEXCL + (either) ORDERBY&LIMIT (or) SECOND

			nott := len(prq.TempTable) == 0
			yestt := len(prq.TempTable) != 0
			noph := !yesphr
			noidx := len(qb.WhrIdxExc) == 0 && len(qb.WhrIdxInc) == 0
			yesidx := len(qb.WhrIdxExc) != 0 || len(qb.WhrIdxInc) != 0

			var t str.PRQTemplate
			t.AU = au
			t.COL = ss.SrchColumn
			t.SYN = ss.SrchSyntax
			t.SK = skg
			t.LIM = fmt.Sprintf("%d", ss.CurrentLimit)
			if ss.NotNear {
				t.IDX = qb.WhrIdxExc
			} else {
				t.IDX = qb.WhrIdxInc
			}
			t.TTN = ss.TTName
			t.PSCol = ss.SrchColumn

			if nott && noph && noidx {
				t.Tail = tails["basic"]
				prq = basicprq(t, prq)
			} else if nott && noph && yesidx {
				// word in work(s)/passage(s): AND ( (index BETWEEN 481 AND 483) OR (index BETWEEN 501 AND 503) ... )
				t.Tail = tails["basic_and_indices"]
				prq = basicidxprq(t, prq)
			} else if nott && yesphr && noidx {
				t.Tail = tails["basic_window"]
				prq = basicwindowprq(t, prq)
			} else if nott && yesphr && yesidx {
				t.Tail = tails["window_with_indices"]
				prq = windandidxprq(t, prq)
			} else if yestt && noph {
				t.Tail = tails["simple_tt"]
				prq = simplettprq(t, prq)
			} else {
				t.Tail = tails["window_with_tt"]
				prq = windowandttprq(t, prq)
			}
			prqq = append(prqq, prq)
		}
	}
	ss.Queries = prqq
	ss.TableSize = len(alltables)
}

//
// HELPERS
//

func acquiretails() map[string]*template.Template {
	// this avoids recompiling them a bunch of times in a loop

	// the search term does not arrive via the templates: it binds to the "$1" at query time

	mm := make(map[string]string)
	mm["basic"] = `{{ .AU }} WHERE {{ .COL }} {{ .SYN }} $1 ORDER BY index ASC LIMIT {{ .LIM }}`
	mm["basic_and_indices"] = `{{ .AU }} WHERE {{ .COL }} {{ .SYN }} $1 AND ({{ .IDX }}) ORDER BY index ASC LIMIT {{ .LIM }}`
	mm["basic_window"] = ` FROM {{ .AU }} ) first
			) second WHERE second.linebundle {{ .SYN }} $1 ORDER BY index ASC LIMIT {{ .LIM }}`
	mm["window_with_indices"] = ` FROM {{ .AU }} WHERE {{ .IDX }} ) first
			) second WHERE second.linebundle {{ .SYN }} $1 ORDER BY index ASC LIMIT {{ .LIM }}`
	mm["simple_tt"] = ` {{ .AU }} WHERE EXISTS
		(SELECT 1 FROM {{ .AU }}_includelist_{{ .TTN }} incl WHERE incl.includeindex = {{ .AU }}.index AND {{ .COL }} {{ .SYN }} $1) LIMIT {{ .LIM }}`
	mm["window_with_tt"] = ` FROM {{ .AU }} WHERE EXISTS
			(SELECT 1 FROM {{ .AU }}_includelist_{{ .TTN }} incl WHERE incl.includeindex = {{ .AU }}.index )
			) first
		) second WHERE second.linebundle {{ .SYN }} $1 LIMIT {{ .LIM }}`

	t := make(map[string]*template.Template)
	for k, v := range mm {
		tmpl, e := template.New(k).Parse(v)
		Msg.EC(e)
		t[k] = tmpl
	}
	return t
}

func basicprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// word in an author
	//
	//		SELECT wkuniversalid, index, level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value,
	//			marked_up_line, accented_line, stripped_line, hyphenated_words, annotations
	//			FROM lt0472 WHERE stripped_line ~* $1  ORDER BY index ASC LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	prq.PsqlQuery = fmt.Sprintf(SELECTFROM, b.String())
	prq.PsqlData = t.SK
	return prq
}

func basicidxprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// word in a work
	//		SELECT wkuniversalid, index, level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value,
	//			marked_up_line, accented_line, stripped_line, hyphenated_words, annotations FROM lt0472 WHERE stripped_line ~* $1 AND (index BETWEEN 1 AND 2548) ORDER BY index ASC LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	prq.PsqlQuery = fmt.Sprintf(SELECTFROM, b.String())
	prq.PsqlData = t.SK
	return prq
}

func basicwindowprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// phrase in an author
	//		SELECT second.wkuniversalid, second.index, second.level_05_value, second.level_04_value, second.level_03_value, second.level_02_value, second.level_01_value, second.level_00_value,
	//			second.marked_up_line, second.accented_line, second.stripped_line, second.hyphenated_words, second.annotations FROM
	//		( SELECT * FROM
	//			( SELECT wkuniversalid, index, level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value, marked_up_line, accented_line, stripped_line, hyphenated_words, annotations,
	//				concat(stripped_line, ' ', lead(stripped_line) OVER (ORDER BY index ASC) ) AS linebundle FROM lt0472 ) first
	//		) second WHERE second.linebundle ~* $1 ORDER BY index ASC LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	alb := fmt.Sprintf(ASLINEBUNDLE, t.PSCol, t.PSCol)

	prq.PsqlQuery = PRFXSELFRM + alb + b.String()
	prq.PsqlData = t.SK
	return prq
}

func windandidxprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// phrase within selections from the author
	// 		SELECT second.wkuniversalid, second.index, ... FROM
	//		( SELECT * FROM
	//			( SELECT wkuniversalid, index, ...,
	//				concat(stripped_line, ' ', lead(stripped_line) OVER (ORDER BY index ASC) ) AS linebundle FROM lt0474 WHERE (index BETWEEN 104798 AND 109397) OR (index BETWEEN 67552 AND 70014) ) first
	//			) second WHERE second.linebundle ~* $1 ORDER BY index ASC LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	alb := fmt.Sprintf(ASLINEBUNDLE, t.PSCol, t.PSCol)

	prq.PsqlQuery = PRFXSELFRM + alb + b.String()
	prq.PsqlData = t.SK
	return prq
}

func simplettprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// 	CREATE TEMPORARY TABLE lt0472_includelist_f5d653cfcdab44c6bfb662f688d47e73 AS
	//		SELECT values AS includeindex FROM
	//			unnest(ARRAY[2,3,4,5,6,7,8,9,...])
	//		values
	// (and then)
	//		SELECT wkuniversalid, index, ... FROM  lt0472 WHERE EXISTS
	//		(SELECT 1 FROM lt0472_includelist_f5d653cfcdab44c6bfb662f688d47e73 incl WHERE incl.includeindex = lt0472.index AND stripped_line ~* $1) LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	prq.PsqlQuery = fmt.Sprintf(SELECTFROM, b.String())
	prq.PsqlData = t.SK
	return prq
}

func windowandttprq(t str.PRQTemplate, prq str.PrerolledQuery) str.PrerolledQuery {
	// 	CREATE TEMPORARY TABLE lt0893_includelist_fce25efdd0d4f4ecab77e636f8c512224 AS
	//		SELECT values AS includeindex FROM
	//			unnest(ARRAY[2,3,4,5,6,7,8,9,...])
	//		values
	// (and then)
	// 		SELECT second.wkuniversalid, second.index, ... FROM
	//		( SELECT * FROM
	//			( SELECT wkuniversalid, index, ...,
	//				concat(stripped_line, ' ', lead(stripped_line) OVER (ORDER BY index ASC) ) AS linebundle FROM lt0893 WHERE EXISTS
	//			(SELECT 1 FROM lt0893_includelist_ce25efdd0d4f4ecab77e636f8c512224 incl WHERE incl.includeindex = lt0893.index )
	//			) first
	//		) second WHERE second.linebundle ~* $1 LIMIT 200

	Msg.TMI(t.Tail.Name())
	var b bytes.Buffer
	e := t.Tail.Execute(&b, t)
	Msg.EC(e)

	alb := fmt.Sprintf(ASLINEBUNDLE, t.PSCol, t.PSCol)

	prq.PsqlQuery = PRFXSELFRM + alb + b.String()
	prq.PsqlData = t.SK
	return prq
}

func requiresindextemptable(au string, bb []str.QueryBounds, ss *str.SearchStruct) string {
	// mimic wholeworktemptablecontents() in whereclauses.py
	const (
		MSG = "%s requiresindextemptable(): %d []QueryBounds"
		CTT = `
	CREATE TEMPORARY TABLE %s_includelist_%s AS
		SELECT values AS includeindex FROM
			unnest(ARRAY[%s])
		values`
	)

	Msg.PEEK(fmt.Sprintf(MSG, au, len(bb)))
	var required []int
	for _, b := range bb {
		for i := b.Start; i <= b.Stop; i++ {
			required = append(required, i)
		}
	}

	var arr []string
	for _, r := range required {
		arr = append(arr, strconv.Itoa(r))
	}
	a := strings.Join(arr, ",")
	ttsq := fmt.Sprintf(CTT, au, ss.TTName, a)

	return ttsq
}

func andorwhereclause(bounds []str.QueryBounds, templ string, negation string, syntax string) string {
	// idxtmpl := `(index %sBETWEEN %d AND %d)` // %s is "" or "NOT "
	var in []string
	for _, v := range bounds {
		i := fmt.Sprintf(templ, negation, v.Start, v.Stop)
		in = append(in, i)
	}
	return strings.Join(in, syntax)
}
