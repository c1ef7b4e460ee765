//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/p-laskaris/AristarchosGoServer/internal/gen"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// LemmaIntoRegexSlice - turn a headword into a bundled collection of regexes that will find all of its forms
func LemmaIntoRegexSlice(hdwd string) []string {
	// rather than do one word per query, bundle things up: some words have >100 forms
	// ...(^|\\s)ἐδηλώϲαντο(\\s|$)|(^|\\s)δεδηλωμένοϲ(\\s|$)|(^|\\s)δήλουϲ(\\s|$)|(^|\\s)δηλούϲαϲ(\\s|$)...
	const (
		FAILMSG = "LemmaIntoRegexSlice() could not find '%s'"
		FAILSLC = "FIND_NOTHING"
	)

	var qq []string
	if _, ok := mps.AllLemm[hdwd]; !ok {
		Msg.FYI(fmt.Sprintf(FAILMSG, hdwd))
		return []string{FAILSLC}
	}

	tp := `(^|\s)%s(\s|$)`

	// unless you do something, "(^|\s)ἁλιεύϲ(\s|$)" will be a search term but this will not find "ἁλιεὺϲ"
	var lemm []string
	for _, l := range mps.AllLemm[hdwd].Deriv {
		lemm = append(lemm, gen.FindAcuteOrGrave(l))
	}

	ct := 0
	for true {
		var bnd []string
		for i := 0; i < vv.MAXLEMMACHUNKSIZE; i++ {
			if ct > len(lemm)-1 {
				break
			}
			re := fmt.Sprintf(tp, lemm[ct])
			bnd = append(bnd, re)
			ct += 1
		}
		qq = append(qq, strings.Join(bnd, "|"))
		if ct >= len(lemm)-1 {
			break
		}
	}
	return qq
}

// WhiteSpacer - massage search string to let regex accept start/end of a line as whitespace
func WhiteSpacer(skg string, ss *str.SearchStruct) string {
	// whitespace issue: " ἐν Ὀρέϲτῃ " cannot be found at the start of a line where it is "ἐν Ὀρέϲτῃ "
	// do not run this before FormatInitialSummary()

	if strings.Contains(skg, " ") {
		ss.SkgRewritten = true
		rs := []rune(skg)
		a := ""
		if rs[0] == ' ' {
			a = "(^|\\s)"
		}
		z := ""
		if rs[len(rs)-1] == ' ' {
			z = "(\\s|$)"
		}
		skg = strings.TrimSpace(skg)
		skg = a + skg + z
	}
	return skg
}

// RestoreWhiteSpace - undo WhiteSpacer() modifications
func RestoreWhiteSpace(skg string) string {
	// phrasecombinations() will choke on WhiteSpacer() products if you do not clear them out first
	skg = strings.Replace(skg, "(^|\\s)", " ", 1)
	skg = strings.Replace(skg, "(\\s|$)", " ", -1)
	return skg
}

// ColumnPicker - convert from db column name into struct name
func ColumnPicker(c string, r str.DbWorkline) string {
	const (
		MSG = "ColumnPicker() was given an unknown column; defaulting to 'stripped_line'"
	)

	var li string
	switch c {
	case "stripped_line":
		li = r.Stripped
	case "accented_line":
		li = r.Accented
	case "marked_up_line": // only a maniac tries to search via marked_up_line
		li = r.MarkedUp
	default:
		li = r.Stripped
		Msg.NOTE(MSG)
	}
	return li
}

// SearchTermFinder - find the universal regex equivalent of the search term
func SearchTermFinder(term string) *regexp.Regexp {
	//	you need to convert:
	//		ποταμον
	//	into:
	//		([πΠ][οὀὁὂὃὄὅόὸΟὈὉὊὋὌὍ][τΤ][αἀἁἂἃἄἅἆἇᾀᾁᾂᾃᾄᾅᾆᾇᾲᾳᾴᾶᾷᾰᾱὰάᾈᾉᾊᾋᾌᾍᾎᾏἈἉἊἋἌἍἎἏΑ][μΜ][οὀὁὂὃὄὅόὸΟὈὉὊὋὌὍ][νΝ])

	const (
		MSG = "SearchTermFinder() could not compile the following: %s"
	)

	stre := gen.UniversalPatternMaker(term)
	pattern, e := regexp.Compile(stre)
	if e != nil {
		Msg.WARN(fmt.Sprintf(MSG, stre))
		pattern = regexp.MustCompile("FAILED_FIND_NOTHING")
	}
	return pattern
}

// CleanInput - remove bad chars, etc. from the submitted data
func CleanInput(s *str.SearchStruct) {
	// address uv issues; lunate issues; ...
	// no need to parse a lemma: this bounces if there is not a key match to a map
	dropping := vv.USELESSINPUT + lnch.Config.BadChars
	s.ID = gen.Purgechars(dropping, s.ID)
	s.Seeking = strings.ToLower(s.Seeking)
	s.Proximate = strings.ToLower(s.Proximate)

	if vv.HasAccent.MatchString(s.Seeking) || vv.HasAccent.MatchString(s.Proximate) {
		// lemma search will select accented automatically
		s.SrchColumn = "accented_line"
	}

	rs := []rune(s.Seeking)
	if len(rs) > vv.MAXINPUTLEN {
		s.Seeking = string(rs[0:vv.MAXINPUTLEN])
	}

	rp := []rune(s.Proximate)
	if len(rp) > vv.MAXINPUTLEN {
		s.Proximate = string(rp[0:vv.MAXINPUTLEN])
	}

	s.Seeking = gen.UVσςϲ(s.Seeking)
	s.Proximate = gen.UVσςϲ(s.Proximate)

	s.Seeking = gen.Purgechars(dropping, s.Seeking)
	s.Proximate = gen.Purgechars(dropping, s.Proximate)

	// don't let BoxA be blank if BoxB is not
	BoxA := s.Seeking == "" && s.LemmaOne == ""
	NotBoxB := s.Proximate != "" || s.LemmaTwo != ""

	if BoxA && NotBoxB {
		if s.Proximate != "" {
			s.Seeking = s.Proximate
			s.Proximate = ""
		}
		if s.LemmaTwo != "" {
			s.LemmaOne = s.LemmaTwo
			s.LemmaTwo = ""
		}
	}
}

// FormatInitialSummary - build HTML for the search summary
func FormatInitialSummary(s *str.SearchStruct) {
	// ex:
	// Sought <span class="sought">»ἡμέρα«</span> within 2 lines of all 79 forms of <span class="sought">»ἀγαθόϲ«</span>
	const (
		TPM = `Sought %s<span class="sought">»%s«</span>%s`
		WIN = `%s within %d %s of %s<span class="sought">»%s«</span>`
		ADF = "all %d forms of "
		INF = "Grabbing all relevant lines..."
	)

	yn := ""
	if s.NotNear {
		yn = " not "
	}

	af1 := ""
	sk := s.Seeking
	if len(s.LemmaOne) != 0 {
		sk = s.LemmaOne
		if _, ok := mps.AllLemm[sk]; ok {
			af1 = fmt.Sprintf(ADF, len(mps.AllLemm[sk].Deriv))
		}
	}

	two := ""
	if s.Twobox {
		sk2 := s.Proximate
		af2 := ""
		if len(s.LemmaTwo) != 0 {
			sk2 = s.LemmaTwo
			if _, ok := mps.AllLemm[sk2]; ok {
				af2 = fmt.Sprintf(ADF, len(mps.AllLemm[sk2].Deriv))
			}
		}
		two = fmt.Sprintf(WIN, yn, s.ProxDist, s.ProxScope, af2, sk2)
	}

	sum := INF
	if sk != "" {
		sum = fmt.Sprintf(TPM, af1, sk, two)
	}
	s.InitSum = sum
}

// InclusionOverview - yield a summary of the inclusions
func InclusionOverview(s *str.SearchStruct, sessincl str.SearchIncExl) string {
	// possible to get burned, but this cheat is "good enough"
	// aristarchosDB=# SELECT COUNT(universalid) FROM authors WHERE universalid LIKE 'gr%';

	const (
		MAXITEMS = 4
		GRCT     = 1823
		LTCT     = 362
		INCT     = 463
		CHCT     = 291
		DPCT     = 516
		FULL     = "all %d of the %s tables"
	)

	in := s.SearchIn
	BuildAuByName(&in)
	BuildWkByName(&in)

	// the named passages are available to a ServerSession, not a SearchStruct
	namemap := sessincl.MappedPsgByName
	var nameslc []string
	for _, v := range namemap {
		nameslc = append(nameslc, v)
	}
	sort.Strings(nameslc)

	var ov []string
	ov = append(ov, in.AuGenres...)
	ov = append(ov, in.WkGenres...)
	ov = append(ov, in.ListedABN...)
	ov = append(ov, in.ListedWBN...)
	ov = append(ov, nameslc...)

	notall := func() string {
		sort.Strings(ov)

		var enum []string

		if len(ov) != 1 {
			for i, p := range ov {
				enum = append(enum, fmt.Sprintf("(%d) %s", i+1, p))
			}
		} else {
			enum = append(enum, ov[0])
		}

		if len(enum) > MAXITEMS {
			diff := len(enum) - MAXITEMS
			enum = enum[0:MAXITEMS]
			enum = append(enum, fmt.Sprintf("and %d others", diff))
		}

		o := strings.Join(enum, "; ")
		nomarkup := strings.NewReplacer("<i>", "", "</i>", "")
		return nomarkup.Replace(o)
	}

	tt := len(ov)
	if tt != len(in.Authors) {
		tt = -1
	}

	r := ""
	switch tt {
	case GRCT:
		r = fmt.Sprintf(FULL, GRCT, "Greek author")
	case LTCT:
		r = fmt.Sprintf(FULL, LTCT, "Latin author")
	case INCT:
		r = fmt.Sprintf(FULL, INCT, "classical inscriptions")
	case DPCT:
		r = fmt.Sprintf(FULL, DPCT, "documentary papyri")
	case CHCT:
		r = fmt.Sprintf(FULL, CHCT, "christian era inscriptions")
	default:
		r = notall()
	}

	return r
}
