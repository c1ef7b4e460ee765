//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"context"
	"fmt"
	"strings"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/gen"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// LemmaMapper - map[string]DbLemma for all lemmata
func LemmaMapper() map[string]*str.DbLemma {
	// example: {dorsum 24563373 [dorsum dorsone dorsa dorsoque dorso dorsoue dorsis dorsi dorsisque dorsumque]}

	// aristarchosDB=# \d greek_lemmata
	//                       Table "public.greek_lemmata"
	//      Column      |         Type          | Collation | Nullable | Default
	//------------------+-----------------------+-----------+----------+---------
	// dictionary_entry | character varying(64) |           |          |
	// xref_number      | integer               |           |          |
	// derivative_forms | text[]                |           |          |
	//Indexes:
	//    "greek_lemmata_idx" btree (dictionary_entry)

	const (
		THEQUERY = `SELECT dictionary_entry, xref_number, derivative_forms FROM %s_lemmata`
	)

	// note that the v --> u here will push us to stripped_line searches instead of accented_line
	clean := strings.NewReplacer("-", "", "j", "i", "v", "u")

	unnested := make(map[string]*str.DbLemma, vv.DBLMMAPSIZE)

	// use the older iterative idiom to facilitate working with pointers: the "foreach" idiom will fight you...
	count := 0
	for _, lg := range vv.TheLanguages {
		q := fmt.Sprintf(THEQUERY, lg)
		foundrows, err := db.Pool().Query(context.Background(), q)
		Msg.EC(err)
		for foundrows.Next() {
			thehit := &str.DbLemma{}
			e := foundrows.Scan(&thehit.Entry, &thehit.Xref, &thehit.Deriv)
			Msg.EC(e)
			thehit.Entry = clean.Replace(thehit.Entry)
			unnested[thehit.Entry] = thehit
			count++
			db.CheckCommit(count)
		}
		foundrows.Close()
	}

	return unnested
}

// NestedLemmaMapper - map[string]map[string]DbLemma keyed to the first two letters of each headword
func NestedLemmaMapper(unnested map[string]*str.DbLemma) map[string]map[string]*str.DbLemma {
	// you need both a nested and the unnested version; nested narrows candidate scans

	nested := make(map[string]map[string]*str.DbLemma)
	swap := strings.NewReplacer("j", "i", "v", "u")
	for k, v := range unnested {
		er := v.EntryRune()
		if len(er) < 2 {
			continue
		}
		rbag := er[0:2]
		rbag = gen.StripaccentsRUNE(rbag)
		bag := strings.ToLower(string(rbag))
		bag = swap.Replace(bag)
		if _, y := nested[bag]; !y {
			nested[bag] = make(map[string]*str.DbLemma)
		}
		nested[bag][k] = v
	}
	return nested
}
