//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/mm"
	"github.com/p-laskaris/AristarchosGoServer/internal/mps"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"github.com/pkg/profile"
	"runtime"
	"sync"
	"time"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// main - read the config, fill the pool, load the maps, launch the hubs, start echo
func main() {
	const (
		MSG = "%d works, %d authors, and %d headwords loaded in %.3fs"
	)

	launchtime := time.Now()

	lnch.ConfigAtLaunch()
	lnch.UpdateMessageMakerWithConfig(Msg)

	if !lnch.Config.QuietStart {
		lnch.PrintVersion(*lnch.Config)
		lnch.PrintBuildInfo(*lnch.Config)
	}

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	}

	if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	// the database pool has to exist before anything else: every map loader and every search wants a connection
	db.LaunchPools()
	db.ProbeCorpus()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		mps.AllWorks = mps.ActiveWorkMapper()
		mps.AllAuthors = mps.ActiveAuthorMapper()
		mps.RePopulateGlobalMaps()
	}()

	go func() {
		defer wg.Done()
		mps.AllLemm = mps.LemmaMapper()
		mps.NestedLemm = mps.NestedLemmaMapper(mps.AllLemm)
	}()

	wg.Wait()

	Msg.NOTE(Msg.Color(fmt.Sprintf(MSG, len(mps.AllWorks), len(mps.AllAuthors), len(mps.AllLemm),
		time.Since(launchtime).Seconds())))

	vlt.BuildUserPassPairs(*lnch.Config)

	// the hubs have to be spinning before the first search or poll arrives
	go vlt.WSSearchInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()
	go mm.PathInfoHub()

	if lnch.Config.ManualGC {
		go func() {
			for {
				time.Sleep(vv.GCPAUSE)
				runtime.GC()
			}
		}()
	}

	if lnch.Config.TickerActive {
		go Msg.Ticker(vv.TICKERDELAY)
	}

	StartEchoServer()
}
