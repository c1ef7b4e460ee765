//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/p-laskaris/AristarchosGoServer/internal/db"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

//
// the searchers do not care where their work comes from: any of the following can stand behind the feeder
//

// SearchJobChannel - a pile of PrerolledQuery that the PRQSearcher workers will drain
type SearchJobChannel interface {
	Enqueue(prqq []str.PrerolledQuery)
	TryDequeue() (str.PrerolledQuery, bool)
	Remaining() int
	Drain()
}

// JobChannelViaConfig - yield the flavor of SearchJobChannel that the configuration requests
func JobChannelViaConfig(srchid string, size int) SearchJobChannel {
	const (
		MSG = "JobChannelViaConfig(): unknown feeder '%s'; using '%s'"
	)

	switch lnch.Config.JobFeeder {
	case vv.JOBFEEDERLIST:
		return NewListJobChannel()
	case vv.JOBFEEDERQUEUE:
		return NewQueueJobChannel(size)
	case vv.JOBFEEDERREDIS:
		return NewRedisJobChannel(srchid)
	default:
		Msg.NOTE(fmt.Sprintf(MSG, lnch.Config.JobFeeder, vv.JOBFEEDERLIST))
		return NewListJobChannel()
	}
}

//
// [a] managed list
//

// ListJobChannel - a mutex-protected slice of PrerolledQuery
type ListJobChannel struct {
	lock sync.Mutex
	jobs []str.PrerolledQuery
}

func NewListJobChannel() *ListJobChannel {
	return &ListJobChannel{}
}

func (lc *ListJobChannel) Enqueue(prqq []str.PrerolledQuery) {
	lc.lock.Lock()
	defer lc.lock.Unlock()
	lc.jobs = append(lc.jobs, prqq...)
}

func (lc *ListJobChannel) TryDequeue() (str.PrerolledQuery, bool) {
	lc.lock.Lock()
	defer lc.lock.Unlock()
	if len(lc.jobs) == 0 {
		return str.PrerolledQuery{}, false
	}
	j := lc.jobs[0]
	lc.jobs = lc.jobs[1:]
	return j, true
}

func (lc *ListJobChannel) Remaining() int {
	lc.lock.Lock()
	defer lc.lock.Unlock()
	return len(lc.jobs)
}

func (lc *ListJobChannel) Drain() {
	lc.lock.Lock()
	defer lc.lock.Unlock()
	lc.jobs = nil
}

//
// [b] blocking queue
//

// QueueJobChannel - a buffered channel of PrerolledQuery; closed once everything is loaded
type QueueJobChannel struct {
	jobs chan str.PrerolledQuery
	once sync.Once
}

func NewQueueJobChannel(size int) *QueueJobChannel {
	if size < 1 {
		size = 1
	}
	return &QueueJobChannel{jobs: make(chan str.PrerolledQuery, size)}
}

func (qc *QueueJobChannel) Enqueue(prqq []str.PrerolledQuery) {
	for _, p := range prqq {
		qc.jobs <- p
	}
	// every query is loaded before the workers launch; safe to close now
	qc.once.Do(func() { close(qc.jobs) })
}

func (qc *QueueJobChannel) TryDequeue() (str.PrerolledQuery, bool) {
	j, ok := <-qc.jobs
	return j, ok
}

func (qc *QueueJobChannel) Remaining() int {
	return len(qc.jobs)
}

func (qc *QueueJobChannel) Drain() {
	qc.once.Do(func() { close(qc.jobs) })
	for range qc.jobs {
		// discard
	}
}

//
// [c] redis set
//

// RedisJobChannel - the queries live in a redis set named after the search id; workers SPOP their way through it
type RedisJobChannel struct {
	key string
}

func NewRedisJobChannel(srchid string) *RedisJobChannel {
	return &RedisJobChannel{key: srchid}
}

func (rc *RedisJobChannel) Enqueue(prqq []str.PrerolledQuery) {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()

	var members []string
	for _, p := range prqq {
		j, e := json.Marshal(p)
		Msg.EC(e)
		members = append(members, string(j))
	}

	db.RCSAdd(c, rc.key, members)
	// a stranded set should not live forever
	db.RCExpire(c, rc.key, vv.REDISJOBKEYTTL)
}

func (rc *RedisJobChannel) TryDequeue() (str.PrerolledQuery, bool) {
	const (
		FAIL = "RedisJobChannel.TryDequeue() could not unmarshal a PrerolledQuery"
	)

	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()

	s := db.RCPopStr(c, rc.key)
	if s == db.SETISEMPTY {
		return str.PrerolledQuery{}, false
	}

	var prq str.PrerolledQuery
	e := json.Unmarshal([]byte(s), &prq)
	if e != nil {
		Msg.WARN(FAIL)
		return str.PrerolledQuery{}, false
	}
	return prq, true
}

func (rc *RedisJobChannel) Remaining() int {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()
	return db.RCScard(c, rc.key)
}

func (rc *RedisJobChannel) Drain() {
	c := db.GrabRedisConnection()
	defer func() { _ = c.Close() }()
	db.RCDel(c, rc.key)
}
