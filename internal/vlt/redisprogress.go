//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"time"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

//
// AN ALTERNATIVE PROGRESS REGISTRY: typed redis keys instead of the in-process hub
//
// a search with id "2f3a..." writes "2f3a..._remaining", "2f3a..._hitcount", etc.
// external monitors can watch a search this way; the in-process hub is otherwise faster
//

const (
	rpactive  = "%s_active"
	rplaunch  = "%s_launchtime"
	rppool    = "%s_poolofwork"
	rpremain  = "%s_remaining"
	rphits    = "%s_hitcount"
	rpmsg     = "%s_statusmessage"
	rpnotes   = "%s_notes"
	rpiterate = "%s_iteration"
)

func redisprogresskeys(id string) []string {
	tt := []string{rpactive, rplaunch, rppool, rpremain, rphits, rpmsg, rpnotes, rpiterate}
	kk := make([]string, len(tt))
	for i, t := range tt {
		kk[i] = fmt.Sprintf(t, id)
	}
	return kk
}

// RedisInsertSrchInfo - register a new search in redis
func RedisInsertSrchInfo(si WSSrchInfo) {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()

	db.RCSetStr(c, fmt.Sprintf(rpactive, si.ID), "yes")
	db.RCSetFloat(c, fmt.Sprintf(rplaunch, si.ID), float64(si.Launched.UnixNano())/1e9)
	db.RCSetInt(c, fmt.Sprintf(rppool, si.ID), int64(si.TableCt))
	db.RCSetInt(c, fmt.Sprintf(rpremain, si.ID), int64(si.Remain))
	db.RCSetInt(c, fmt.Sprintf(rphits, si.ID), int64(si.Hits))
	db.RCSetStr(c, fmt.Sprintf(rpmsg, si.ID), si.Summary)
	db.RCSetStr(c, fmt.Sprintf(rpnotes, si.ID), si.ExtraNote)
	db.RCSetInt(c, fmt.Sprintf(rpiterate, si.ID), int64(si.Iteration))

	for _, k := range redisprogresskeys(si.ID) {
		db.RCExpire(c, k, vv.REDISJOBKEYTTL)
	}
}

// RedisFetchSrchInfo - rebuild a WSSrchInfo from the typed keys
func RedisFetchSrchInfo(id string) WSSrchInfo {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()

	var si WSSrchInfo
	si.ID = id

	if db.RCGetStr(c, fmt.Sprintf(rpactive, id)) != "yes" {
		si.Exists = false
		return si
	}

	si.Exists = true
	si.SrchCount = 1
	lt := db.RCGetFloat(c, fmt.Sprintf(rplaunch, id))
	si.Launched = time.Unix(int64(lt), 0)
	si.TableCt = int(db.RCGetInt(c, fmt.Sprintf(rppool, id)))
	si.Remain = int(db.RCGetInt(c, fmt.Sprintf(rpremain, id)))
	si.Hits = int(db.RCGetInt(c, fmt.Sprintf(rphits, id)))
	si.Summary = db.RCGetStr(c, fmt.Sprintf(rpmsg, id))
	si.ExtraNote = db.RCGetStr(c, fmt.Sprintf(rpnotes, id))
	si.Iteration = int(db.RCGetInt(c, fmt.Sprintf(rpiterate, id)))

	return si
}

// RedisDeleteProgress - a search ended; clean up after it
func RedisDeleteProgress(id string) {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()

	db.RCSetStr(c, fmt.Sprintf(rpactive, id), "no")

	if lnch.Config.SaveProgress {
		// leave the counters around for inspection; the TTL will reap them eventually
		return
	}

	for _, k := range redisprogresskeys(id) {
		db.RCDel(c, k)
	}
}

//
// THE COMMON FACE: search code calls these and does not care which registry is active
//

func usingredisprogress() bool {
	return lnch.Config.ProgFeeder == vv.PROGFEEDERREDIS
}

// ProgressInsert - register a fresh search with the active registry
func ProgressInsert(si WSSrchInfo) {
	if usingredisprogress() {
		RedisInsertSrchInfo(si)
		return
	}
	WSInfo.InsertInfo <- si
}

// ProgressRemain - update the "tables remaining" count
func ProgressRemain(id string, n int) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetInt(c, fmt.Sprintf(rpremain, id), int64(n))
		return
	}
	WSInfo.UpdateRemain <- WSSIKVi{id, n}
}

// ProgressHits - update the hit count
func ProgressHits(id string, n int) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetInt(c, fmt.Sprintf(rphits, id), int64(n))
		return
	}
	WSInfo.UpdateHits <- WSSIKVi{id, n}
}

// ProgressTableCt - update the total pool of work
func ProgressTableCt(id string, n int) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetInt(c, fmt.Sprintf(rppool, id), int64(n))
		return
	}
	WSInfo.UpdateTW <- WSSIKVi{id, n}
}

// ProgressIteration - mark which pass of a multi-pass search is running
func ProgressIteration(id string, n int) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetInt(c, fmt.Sprintf(rpiterate, id), int64(n))
		return
	}
	WSInfo.UpdateIteration <- WSSIKVi{id, n}
}

// ProgressSummary - update the status message
func ProgressSummary(id string, s string) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetStr(c, fmt.Sprintf(rpmsg, id), s)
		return
	}
	WSInfo.UpdateSummMsg <- WSSIKVs{id, s}
}

// ProgressNote - update the supplementary note
func ProgressNote(id string, s string) {
	if usingredisprogress() {
		c := db.GrabRedisConnection()
		defer func() { _ = c.Close() }()
		db.RCSetStr(c, fmt.Sprintf(rpnotes, id), s)
		return
	}
	WSInfo.UpdateExtraNote <- WSSIKVs{id, s}
}

// ProgressDelete - a search is over; drop it from the active registry
func ProgressDelete(id string) {
	if usingredisprogress() {
		RedisDeleteProgress(id)
		return
	}
	WSInfo.Del <- id
}
