//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

const (
	WORKTEMPLATE = ` universalid, title, language, publication_info,
		levellabels_00, levellabels_01, levellabels_02, levellabels_03, levellabels_04, levellabels_05,
		workgenre, transmission, worktype, provenance, recorded_date, converted_date, wordcount,
		firstline, lastline, authentic`
)

// ActiveWorkMapper - build a map of all works in the *active* corpora; keyed to the workUID: map[string]*DbWork
func ActiveWorkMapper() map[string]*str.DbWork {
	// note that you are still on the hook for adding to the global workmap when someone calls "/setoption/papyruscorpus/yes"
	// AND you should never drop from the map because that is only session-specific: "no" is only "no for me"
	// so the memory footprint can only grow

	workmap := make(map[string]*str.DbWork)

	for k, b := range lnch.Config.DefCorp {
		if b {
			workmap = MapNewWorkCorpus(k, workmap)
		}
	}
	return workmap
}

// MapNewWorkCorpus - add a corpus to a workmap
func MapNewWorkCorpus(corpus string, workmap map[string]*str.DbWork) map[string]*str.DbWork {
	const (
		MSG = "MapNewWorkCorpus() added %d works from '%s'"
	)
	toadd := sliceworkcorpus(corpus)
	for i := 0; i < len(toadd); i++ {
		w := toadd[i]
		workmap[w.UID] = &w
	}

	LoadedCorp[corpus] = true

	Msg.PEEK(fmt.Sprintf(MSG, len(toadd), corpus))
	return workmap
}

// sliceworkcorpus - fetch all relevant works from the db as a DbWork slice
func sliceworkcorpus(corpus string) []str.DbWork {
	// this is far and away the "heaviest" bit of the whole program if you grab every known work

	// aristarchosDB-# \d works
	//                            Table "public.works"
	//      Column      |          Type          | Collation | Nullable | Default
	//------------------+------------------------+-----------+----------+---------
	// universalid      | character(10)          |           |          |
	// title            | character varying(512) |           |          |
	// language         | character varying(10)  |           |          |
	// publication_info | text                   |           |          |
	// levellabels_00   | character varying(64)  |           |          |
	// ...
	// authentic        | boolean                |           |          |

	const (
		CT = `SELECT count(*) FROM works WHERE universalid ~* '^%s'`
		QT = `SELECT %s FROM works WHERE universalid ~* '^%s'`
	)

	var cc int
	cq := fmt.Sprintf(CT, corpus)
	qq := fmt.Sprintf(QT, WORKTEMPLATE, corpus)

	countrow := db.Pool().QueryRow(context.Background(), cq)
	err := countrow.Scan(&cc)
	Msg.EC(err)

	foundrows, err := db.Pool().Query(context.Background(), qq)
	Msg.EC(err)

	workslice := make([]str.DbWork, cc)
	var w str.DbWork

	foreach := []any{&w.UID, &w.Title, &w.Language, &w.Pub, &w.LL0, &w.LL1, &w.LL2, &w.LL3, &w.LL4, &w.LL5, &w.Genre,
		&w.Xmit, &w.Type, &w.Prov, &w.RecDate, &w.ConvDate, &w.WdCount, &w.FirstLine, &w.LastLine, &w.Authentic}

	index := 0
	rwfnc := func() error {
		workslice[index] = w
		index++
		db.CheckCommit(index)
		return nil
	}

	_, e := pgx.ForEachRow(foundrows, foreach, rwfnc)
	Msg.EC(e)

	return workslice
}

// Buildwkcorpusmap - populate global variable used by SessionIntoSearchlist()
func Buildwkcorpusmap() map[string][]string {
	wkcorpusmap := make(map[string][]string)
	for _, w := range AllWorks {
		for _, c := range vv.TheCorpora {
			if w.UID[0:2] == c {
				wkcorpusmap[c] = append(wkcorpusmap[c], w.UID)
			}
		}
	}
	return wkcorpusmap
}

// Buildwkgenresmap - populate global variable used by the selection mechanism
func Buildwkgenresmap() map[string]bool {
	genres := make(map[string]bool)
	for _, w := range AllWorks {
		genres[w.Genre] = true
	}
	return genres
}

// Buildwklocationmap - populate global variable used by the selection mechanism
func Buildwklocationmap() map[string]bool {
	locations := make(map[string]bool)
	for _, w := range AllWorks {
		locations[w.Prov] = true
	}
	return locations
}
