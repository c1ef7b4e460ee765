//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

func buildersearch() str.SearchStruct {
	var ss str.SearchStruct
	ss.Seeking = "dolor"
	ss.SrchColumn = vv.DEFAULTCOLUMN
	ss.SrchSyntax = vv.DEFAULTQUERYSYNTAX
	ss.OrderBy = vv.ORDERBY
	ss.CurrentLimit = 200
	ss.TTName = "f5d653cfcdab44c6bfb662f688d47e73"
	return ss
}

func TestSSBuildQueriesWholeAuthor(t *testing.T) {
	ss := buildersearch()
	ss.SearchIn.Authors = []string{"lt0472"}
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.PsqlQuery, "FROM lt0472 WHERE stripped_line ~ $1")
	assert.Contains(t, q.PsqlQuery, "ORDER BY index ASC LIMIT 200")
	assert.Equal(t, "dolor", q.PsqlData)
	assert.Empty(t, q.TempTable)
	assert.Equal(t, 1, ss.TableSize)
}

func TestSSBuildQueriesBoundedByWork(t *testing.T) {
	mps.AllWorks["lt0472w001"] = &str.DbWork{
		UID: "lt0472w001", FirstLine: 1, LastLine: 2548, Authentic: true,
	}
	defer delete(mps.AllWorks, "lt0472w001")

	ss := buildersearch()
	ss.SearchIn.Works = []string{"lt0472w001"}
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.PsqlQuery, "(index BETWEEN 1 AND 2548)")
	assert.Contains(t, q.PsqlQuery, "FROM lt0472 WHERE stripped_line ~ $1")
}

func TestSSBuildQueriesBoundedByPassage(t *testing.T) {
	ss := buildersearch()
	ss.SearchIn.Passages = []string{"gr0032_FROM_11313_TO_11843"}
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.PsqlQuery, "FROM gr0032")
	assert.Contains(t, q.PsqlQuery, "(index BETWEEN 11313 AND 11843)")
}

func TestSSBuildQueriesPhraseWindow(t *testing.T) {
	ss := buildersearch()
	// the backslash keeps the least-common-term shortcut out of play
	ss.Seeking = `dolor\s sit`
	ss.HasPhraseBoxA = true
	ss.SearchIn.Authors = []string{"lt0472"}
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.PsqlQuery, "linebundle")
	assert.Contains(t, q.PsqlQuery, "concat(stripped_line, ' ', lead(stripped_line)")
	assert.Contains(t, q.PsqlQuery, "second.linebundle ~ $1")
}

func TestSSBuildQueriesTempTable(t *testing.T) {
	// enough discrete passages to trip the temporary table path
	pp := make([]string, vv.TEMPTABLETHRESHOLD+1)
	for i := 0; i < len(pp); i++ {
		pp[i] = fmt.Sprintf("lt0472_FROM_%d_TO_%d", i*10, i*10+1)
	}

	ss := buildersearch()
	ss.SearchIn.Passages = pp
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.TempTable, "CREATE TEMPORARY TABLE lt0472_includelist_"+ss.TTName)
	assert.Contains(t, q.PsqlQuery, "lt0472_includelist_"+ss.TTName)
	assert.Contains(t, q.PsqlQuery, "EXISTS")
}

func TestSSBuildQueriesLemmatized(t *testing.T) {
	derivs := []string{"amo", "amas", "amat"}
	mps.AllLemm["amo"] = &str.DbLemma{Entry: "amo", Deriv: derivs}
	defer delete(mps.AllLemm, "amo")

	ss := buildersearch()
	ss.Seeking = ""
	ss.LemmaOne = "amo"
	ss.SearchIn.Authors = []string{"lt0472"}
	SSBuildQueries(&ss)

	// three forms fit inside one bundle
	require.Len(t, ss.Queries, 1)
	assert.Contains(t, ss.Queries[0].PsqlData, `(^|\s)amo(\s|$)`)
}

func TestSSBuildQueriesEmptySeeking(t *testing.T) {
	// the second pass of a words-scope proximity search wants every line in the passage windows;
	// the plan still carries "$1" and the empty pattern has to ride along as the bound argument
	ss := buildersearch()
	ss.Seeking = ""
	ss.SearchIn.Passages = []string{"gr0007_FROM_15190_TO_15200"}
	SSBuildQueries(&ss)

	require.Len(t, ss.Queries, 1)
	q := ss.Queries[0]
	assert.Contains(t, q.PsqlQuery, "$1")
	assert.Equal(t, "", q.PsqlData)
	assert.True(t, q.Binds())
}

func TestRequiresindextemptable(t *testing.T) {
	ss := buildersearch()
	bb := []str.QueryBounds{{Start: 1, Stop: 3}, {Start: 7, Stop: 8}}
	ttsq := requiresindextemptable("lt0472", bb, &ss)

	assert.Contains(t, ttsq, "CREATE TEMPORARY TABLE lt0472_includelist_"+ss.TTName)
	assert.Contains(t, ttsq, "unnest(ARRAY[1,2,3,7,8])")
}

func TestAndorwhereclause(t *testing.T) {
	templ := `(index %sBETWEEN %d AND %d)`
	bb := []str.QueryBounds{{Start: 138, Stop: 175}, {Start: 471, Stop: 510}}

	incl := andorwhereclause(bb, templ, "", " OR ")
	assert.Equal(t, "(index BETWEEN 138 AND 175) OR (index BETWEEN 471 AND 510)", incl)

	excl := andorwhereclause(bb, templ, "NOT ", " AND ")
	assert.Equal(t, "(index NOT BETWEEN 138 AND 175) AND (index NOT BETWEEN 471 AND 510)", excl)
}
