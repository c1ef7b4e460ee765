//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"strings"
	"text/template"
)

// PrerolledQuery - a fully prepared search against one author table; PsqlData binds to the "$1" in PsqlQuery
type PrerolledQuery struct {
	TempTable string
	PsqlQuery string
	PsqlData  string
}

// Binds - does this statement carry a placeholder that needs an argument at execution time?
func (prq *PrerolledQuery) Binds() bool {
	// a second pass of WithinXWordsSearch() wants "anything in these lines" and so sends an empty
	// PsqlData; postgres is happy to match every line against '' but will refuse a naked "$1"
	return strings.Contains(prq.PsqlQuery, "$1")
}

type QueryBounds struct {
	Start int
	Stop  int
}

// PRQTemplate - the fill-in values for the query tail templates; see querybuilder.go
type PRQTemplate struct {
	AU    string
	COL   string
	SYN   string
	SK    string
	LIM   string
	IDX   string
	TTN   string
	Tail  *template.Template
	PSCol string
}
