//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurgechars(t *testing.T) {
	assert.Equal(t, "abcd", Purgechars(`"'!`, `ab"c'd`))
	assert.Equal(t, "unchanged", Purgechars(`"'!`, "unchanged"))
	assert.Equal(t, "", Purgechars("x", "xxx"))
}

func TestAvoidLongLines(t *testing.T) {
	t.Run("short strings are untouched", func(t *testing.T) {
		assert.Equal(t, "short", AvoidLongLines("short", 100))
	})
	t.Run("long strings acquire breaks", func(t *testing.T) {
		long := strings.Repeat("word ", 40)
		out := AvoidLongLines(long, 30)
		assert.Contains(t, out, "<br>")
		assert.Equal(t, 40, strings.Count(out, "word"))
	})
}
