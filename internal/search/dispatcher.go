//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"context"
	"sync"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// SearchAndInsertResults - take a SearchStruct; fan out its []PrerolledQuery; collect the results; insert a WorkLineBundle into the SearchStruct
func SearchAndInsertResults(ss *str.SearchStruct) {
	// see https://go.dev/blog/pipelines : see Parallel digestion & Fan-out, fan-in & Explicit cancellation

	// theoretically possible to yield up the interim results while the search is in progress; but a pain/gain problem
	// specifically, two-part searches will always need a lot of fussing... websocket is perhaps the way to go

	defer ss.CancelFnc()

	// [a] load the queries into a job channel
	jobs := JobChannelViaConfig(ss.WSID, len(ss.Queries))
	jobs.Enqueue(ss.Queries)
	defer jobs.Drain()

	// [b] fan out to run searches in parallel; searches fed by the job channel
	workers := lnch.Config.WorkerCount
	searchchannels := make([]<-chan *str.WorkLineBundle, workers)

	for i := 0; i < workers; i++ {
		searchchannels[i] = PRQSearcher(ss.Context, ss.WSID, jobs)
	}

	mx := ss.CurrentLimit
	if ss.HasPhraseBoxA {
		// windowing generates double-hits; c. 55% are valid; these get pared via FindPhrasesAcrossLines()
		mx = ss.CurrentLimit * 3
	}

	// [c] fan in to gather the results into a single channel
	resultchan := ResultChannelAggregator(ss.Context, searchchannels...)

	// [d] pull the results off of the result channel and collate them
	FinalResultCollation(ss, mx, resultchan)
}

// PRQSearcher - grab a PrerolledQuery from the job channel; execute the search; emit finds to a channel
func PRQSearcher(ctx context.Context, wsid string, jobs SearchJobChannel) <-chan *str.WorkLineBundle {
	const (
		RETRY = "PRQSearcher() returned an error; the connection pool was flagged and the query will be retried once"
	)

	foundlineschannel := make(chan *str.WorkLineBundle)

	acquire := func(prq str.PrerolledQuery) db.PGConn {
		// temp table DDL runs on the writer role; everything else stays read-only
		if prq.TempTable != "" {
			return db.GetRWConnection()
		}
		return db.GetDBConnection()
	}

	execute := func(prq str.PrerolledQuery) *str.WorkLineBundle {
		dbconn := acquire(prq)
		b, err := db.WorkLineBundleOrErr(prq, dbconn)
		dbconn.Release()
		if err == nil {
			return b
		}

		// a lost connection should not kill the whole search; try again on a fresh connection
		Msg.WARN(RETRY)
		db.FlagPoolForCleaning()
		dbconn = acquire(prq)
		defer dbconn.Release()
		b, err = db.WorkLineBundleOrErr(prq, dbconn)
		Msg.EC(err)
		return b
	}

	consume := func() {
		defer close(foundlineschannel)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				prq, ok := jobs.TryDequeue()
				if !ok {
					return
				}
				b := execute(prq)
				rem := jobs.Remaining()
				if rem%vv.POLLEVERYNTABLES == 0 {
					vlt.ProgressRemain(wsid, rem)
				}
				foundlineschannel <- b
			}
		}
	}

	go consume()

	return foundlineschannel
}

// ResultChannelAggregator - gather all hits from the searchchannels into one place and then feed them to FinalResultCollation
func ResultChannelAggregator(ctx context.Context, searchchannels ...<-chan *str.WorkLineBundle) <-chan *str.WorkLineBundle {
	var wg sync.WaitGroup
	resultchann := make(chan *str.WorkLineBundle)

	broadcast := func(wlbb <-chan *str.WorkLineBundle) {
		defer wg.Done()
		for b := range wlbb {
			select {
			case resultchann <- b:
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(len(searchchannels))
	for _, fc := range searchchannels {
		go broadcast(fc)
	}

	go func() {
		wg.Wait()
		close(resultchann)
	}()

	return resultchann
}

// FinalResultCollation - insert the actual WorkLineBundle results into the SearchStruct after pulling them from the ResultChannelAggregator channel
func FinalResultCollation(ss *str.SearchStruct, maxhits int, foundbundle <-chan *str.WorkLineBundle) {
	var collated str.WorkLineBundle

	addhits := func(foundbundle *str.WorkLineBundle) {
		// each foundbundle comes off of a single author table
		// so OneHit searches will just grab the top of that bundle
		if ss.OneHit && ss.PhaseNum == 1 && !foundbundle.IsEmpty() {
			collated.AppendOne(foundbundle.FirstLine())
		} else {
			collated.AppendLines(foundbundle.Lines)
		}
		vlt.ProgressHits(ss.WSID, collated.Len())
	}

	done := false
	for {
		if done {
			break
		}
		select {
		case <-ss.Context.Done():
			done = true
		case lb, ok := <-foundbundle:
			if ok {
				addhits(lb)
				if collated.Len() >= maxhits {
					collated.ResizeTo(maxhits)
					ss.HitMax = true
					done = true
				}
			} else {
				done = true
			}
		}
	}

	ss.Results = collated
}
