//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
)

//
// STARTUP SELF-CHECKS
//

// ProbeCorpus - make sure the database actually holds a corpus before serving anything
func ProbeCorpus() {
	const (
		AQ    = `SELECT count(universalid) FROM authors`
		WQ    = `SELECT count(universalid) FROM works`
		LQ    = `SELECT count(dictionary_entry) FROM %s_lemmata`
		AUTH  = `authentication failed`
		MISS  = `does not exist`
		FAIL1 = "ProbeCorpus() found no '%s' table; the database has not been loaded"
		FAIL2 = "ProbeCorpus() could not authenticate against postgres; check your credentials"
		FAIL3 = "ProbeCorpus(): '%s'"
		GOOD  = "ProbeCorpus() found %d authors and %d works"
	)

	var au int
	var wk int

	check := func(q string, target *int, table string) {
		e := Pool().QueryRow(context.Background(), q).Scan(target)
		if e != nil {
			if strings.Contains(e.Error(), AUTH) {
				Msg.MAND(FAIL2)
			} else if strings.Contains(e.Error(), MISS) {
				Msg.MAND(fmt.Sprintf(FAIL1, table))
			} else {
				Msg.MAND(fmt.Sprintf(FAIL3, e.Error()))
			}
			Msg.ExitOrHang(0)
		}
	}

	check(AQ, &au, "authors")
	check(WQ, &wk, "works")

	var lm int
	for _, lg := range []string{"greek", "latin"} {
		check(fmt.Sprintf(LQ, lg), &lm, lg+"_lemmata")
	}

	if au == 0 || wk == 0 {
		Msg.MAND(fmt.Sprintf(FAIL1, "authors/works"))
		Msg.ExitOrHang(0)
	}

	Msg.PEEK(fmt.Sprintf(GOOD, au, wk))
}

//
// COMMIT COUNTING
//

// CheckCommit - bulk table walkers call this every row; it logs progress every Config.MPCommit rows
func CheckCommit(done int) {
	const (
		NOTE = "CheckCommit(): %d rows processed"
	)

	cc := lnch.Config.MPCommit
	if cc == 0 {
		return
	}

	if done%cc == 0 {
		Msg.TMI(fmt.Sprintf(NOTE, done))
	}
}
