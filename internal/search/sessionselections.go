//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"

	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

// BuildSelectionOverview - fill out the names for the current selections and sort them for display
func BuildSelectionOverview(s *str.ServerSession) {
	BuildAuByName(&s.Inclusions)
	BuildAuByName(&s.Exclusions)
	BuildWkByName(&s.Inclusions)
	BuildWkByName(&s.Exclusions)
	s.Inclusions.BuildPsgByName()
	s.Exclusions.BuildPsgByName()
}

// BuildAuByName - map the selected author ids onto their display names
func BuildAuByName(i *str.SearchIncExl) {
	bn := make(map[string]string, len(i.Authors))
	for _, a := range i.Authors {
		if au, ok := mps.AllAuthors[a]; ok {
			bn[a] = au.Cleaname
		}
	}
	i.MappedAuthByName = bn
	i.BuildAuByName()
}

// BuildWkByName - map the selected work ids onto "author, title" display names
func BuildWkByName(i *str.SearchIncExl) {
	const (
		TMPL = `%s, <i>%s</i>`
	)
	bn := make(map[string]string, len(i.Works))
	for _, w := range i.Works {
		ws, ok := mps.AllWorks[w]
		if !ok {
			continue
		}
		au := mps.DbWkMyAu(ws).Name
		bn[w] = fmt.Sprintf(TMPL, au, ws.Title)
	}
	i.MappedWkByName = bn
	i.BuildWkByName()
}
