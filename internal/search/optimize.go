//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"
	"strings"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

// OptimizeSearch - think about rewriting the search to make it faster
func OptimizeSearch(s *str.SearchStruct) {
	// only zero or one of the following should be true

	// if BoxA has a lemma and BoxB has a phrase, it is almost certainly faster to search B, then A...
	if s.HasLemmaBoxA && s.HasPhraseBoxB {
		s.SwapPhraseAndLemma()
		return
	}

	// all forms of an uncommon word should (usually) be sought before all forms of a common word...
	if s.HasLemmaBoxA && s.HasLemmaBoxB {
		PickFastestLemma(s)
		return
	}

	// a single word should be faster than a lemma; but do not swap an empty string
	if s.HasLemmaBoxA && !s.HasPhraseBoxB && s.Proximate != "" {
		s.SwapWordAndLemma()
		return
	}

	// consider looking for the string with more characters in it first
	if len(s.Seeking) > 0 && len(s.Proximate) > 0 {
		s.SearchQuickestFirst()
		return
	}
}

// PickFastestLemma - all forms of an uncommon word should (usually) be sought before all forms of a common word
func PickFastestLemma(s *str.SearchStruct) {
	// Sought all 65 forms of »δημηγορέω« within 1 lines of all 386 forms of »γιγνώϲκω«
	// swapped: 20s vs 80s

	// Sought all 12 forms of »αὐτοκράτωρ« within 1 lines of all 50 forms of »πόλιϲ«
	// swapped: 4.17s vs 10.09s

	// it does not *always* save time to just pick the uncommon word:

	// Sought all 50 forms of »πόλιϲ« within 1 lines of all 191 forms of »ὁπλίζω«
	// this fnc will COST you 10s when you swap: 33s instead of 23s

	// the "191 forms" take longer to find than the "50 forms"; that is, the fast first pass of πόλιϲ is fast
	// enough to offset the cost of looking for ὁπλίζω among the 125274 initial hits

	// note that it is *usually* the case that words with more forms also have more hits;
	// the penalty for being wrong is relatively low; the savings when you get this right can be significant

	const (
		NOTE1 = "PickFastestLemma() is swapping %s for %s: possible hits %d < %d; known forms %d < %d"
		NOTE2 = "PickFastestLemma() is NOT swapping %s for %s: possible hits %d vs %d; known forms %d vs %d"
	)

	hw1 := HeadwordLookup(s.LemmaOne)
	hw2 := HeadwordLookup(s.LemmaTwo)

	// how many forms to look up?
	fc1 := len(mps.AllLemm[s.LemmaOne].Deriv)
	fc2 := len(mps.AllLemm[s.LemmaTwo].Deriv)

	// the "&&" tries to address the »πόλιϲ« vs »ὁπλίζω« problem: see the notes above
	if (hw1.Total > hw2.Total) && (fc1 > fc2) {
		s.LemmaTwo = hw1.Entry
		s.LemmaOne = hw2.Entry
		Msg.PEEK(fmt.Sprintf(NOTE1, hw2.Entry, hw1.Entry, hw2.Total, hw1.Total, fc2, fc1))
	} else {
		Msg.PEEK(fmt.Sprintf(NOTE2, hw1.Entry, hw2.Entry, hw1.Total, hw2.Total, fc1, fc2))
	}
}

// HeadwordLookup - aggregate corpus counts for a dictionary headword
func HeadwordLookup(wd string) str.DbHeadwordCount {
	return db.GetIndividualHeadwordCount(wd)
}

// PickLeastCommonTerm - which word in a phrase has the fewest attestations?
func PickLeastCommonTerm(phrase string) string {
	// a phrase search is built on a windowed "linebundle" column and that makes every query slow;
	// better to scan for the one word in the phrase that occurs least often and then let
	// FindPhrasesAcrossLines() cull the not-really-a-hit lines

	// the catch: a hit in a bundle where the rare word sits on the next line does not show the
	// whole phrase in the line itself; that is what the second pass is for

	const (
		FOUND = "PickLeastCommonTerm() picked '%s' from '%s'"
		META  = `.^$*+?()[]{}|\`
	)

	clean := strings.TrimPrefix(phrase, "(^|\\s)")
	clean = strings.TrimSuffix(clean, "(\\s|$)")
	words := strings.Fields(clean)

	if len(words) < 2 {
		return ""
	}

	// regex inside the phrase means the tokens are not plain words; the window has to do the work
	for _, w := range words {
		if strings.ContainsAny(w, META) {
			return ""
		}
	}

	counts := db.GetWordCounts(words)

	// an unattested word is the rarest thing of all
	least := ""
	min := -1
	for _, w := range words {
		c, ok := counts[w]
		t := 0
		if ok {
			t = c.Total
		}
		if min == -1 || t < min {
			min = t
			least = w
		}
	}

	if least != "" {
		Msg.PEEK(fmt.Sprintf(FOUND, least, phrase))
	}

	return least
}
