//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"fmt"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	AllWorks    = make(map[string]*str.DbWork)
	AllAuthors  = make(map[string]*str.DbAuthor)
	AllLemm     = make(map[string]*str.DbLemma)
	NestedLemm  = make(map[string]map[string]*str.DbLemma)
	WkCorpusMap = make(map[string][]string)
	AuCorpusMap = make(map[string][]string)
	AuGenres    = make(map[string]bool)
	WkGenres    = make(map[string]bool)
	AuLocs      = make(map[string]bool)
	WkLocs      = make(map[string]bool)
	LoadedCorp  = make(map[string]bool)
)

// RePopulateGlobalMaps - fill up WkCorpusMap, AuCorpusMap, ...
func RePopulateGlobalMaps() {
	WkCorpusMap = Buildwkcorpusmap()
	AuCorpusMap = Buildaucorpusmap()
	AuGenres = Buildaugenresmap()
	WkGenres = Buildwkgenresmap()
	AuLocs = Buildaulocationmap()
	WkLocs = Buildwklocationmap()
}

// DbWkMyAu - return the work's DbAuthor
func DbWkMyAu(dbw *str.DbWork) *str.DbAuthor {
	a, ok := AllAuthors[dbw.AuID()]
	if !ok {
		Msg.WARN(fmt.Sprintf("mps.DbWkMyAu() failed to find '%s'", dbw.AuID()))
		a = &str.DbAuthor{}
	}
	return a
}

// DbWlnMyAu - return the workline's DbAuthor
func DbWlnMyAu(dbw *str.DbWorkline) *str.DbAuthor {
	a, ok := AllAuthors[dbw.AuID()]
	if !ok {
		Msg.WARN(fmt.Sprintf("mps.DbWlnMyAu() failed to find '%s'", dbw.AuID()))
		a = &str.DbAuthor{}
	}
	return a
}

// DbWlnMyWk - return the workline's DbWork
func DbWlnMyWk(dbw *str.DbWorkline) *str.DbWork {
	w, ok := AllWorks[dbw.WkUID]
	if !ok {
		Msg.WARN(fmt.Sprintf("mps.DbWlnMyWk() failed to find '%s'", dbw.WkUID))
		w = &str.DbWork{}
	}
	return w
}
