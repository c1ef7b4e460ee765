//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripaccentsSTR(t *testing.T) {
	assert.Equal(t, "οκνειϲ", StripaccentsSTR("ὀκνεῖϲ"))
	assert.Equal(t, "ανθρωποϲ", StripaccentsSTR("ἄνθρωποϲ"))
	// capitals reduce too
	assert.Equal(t, "αθηναιοϲ", StripaccentsSTR("Ἀθηναῖοϲ"))
}

func TestUVσςϲ(t *testing.T) {
	assert.Equal(t, "urbs", UVσςϲ("Vrbs"))
	assert.Equal(t, "iam", UVσςϲ("Jam"))
	// sigma variants all collapse to the lunate
	assert.Equal(t, "ϲοφιϲτήϲ", UVσςϲ("σοφιστής"))
}

func TestFormatBCEDate(t *testing.T) {
	assert.Equal(t, "300 B.C.E.", FormatBCEDate("-300"))
	assert.Equal(t, "14 C.E.", FormatBCEDate("14"))
	assert.Equal(t, "850 B.C.E.", IntToBCE(-850))
}

func TestCapsVariants(t *testing.T) {
	assert.Equal(t, "[aA][bB]", CapsVariants("ab"))
}

func TestUniversalPatternMaker(t *testing.T) {
	stre := UniversalPatternMaker("ab")
	re, e := regexp.Compile(stre)
	require.NoError(t, e)
	assert.True(t, re.MatchString("AB"))
	assert.True(t, re.MatchString("ab"))
	assert.False(t, re.MatchString("xy"))
}

func TestFindAcuteOrGrave(t *testing.T) {
	// an acute should also find its grave twin
	stre := FindAcuteOrGrave("ά")
	re, e := regexp.Compile(stre)
	require.NoError(t, e)
	assert.True(t, re.MatchString("ὰ"))
	assert.True(t, re.MatchString("ά"))
}

func TestSwapAcuteAndGrave(t *testing.T) {
	assert.Equal(t, "καί", SwapAcuteForGrave("καὶ"))
	assert.Equal(t, "καὶ", SwapGraveForAcute("καί"))
}

func TestDeLunate(t *testing.T) {
	in := "Τὴν οὖν τῶν ϲωμάτων ϲύνταξιν ϲκεψαμένουϲ πρὸϲ"
	want := "Τὴν οὖν τῶν σωμάτων σύνταξιν σκεψαμένους πρὸς"
	assert.Equal(t, want, DeLunate(in))
}
