//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

//
// REDIS
//

// only needed when Config.JobFeeder or Config.ProgFeeder is "redis"; the pool builds lazily

const (
	SETISEMPTY = "SET_IS_EMPTY"
)

var (
	redispool *redis.Pool
	redisinit sync.Once
)

// GrabRedisConnection - get a connection from the redis pool; callers must Close() it
func GrabRedisConnection() redis.Conn {
	redisinit.Do(func() {
		redispool = newredispool(lnch.Config.RLogin)
	})
	return redispool.Get()
}

func newredispool(rl str.RedisLogin) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			var oo []redis.DialOption
			if rl.Password != "" {
				oo = append(oo, redis.DialPassword(rl.Password))
			}
			if rl.DB != 0 {
				oo = append(oo, redis.DialDatabase(rl.DB))
			}
			return redis.Dial("tcp", rl.Addr, oo...)
		},
	}
}

//
// THE SMALL COMMAND HELPERS
//

func RCDel(c redis.Conn, k string) {
	_, err := c.Do("DEL", k)
	Msg.EC(err)
}

func RCSetInt(c redis.Conn, k string, v int64) {
	_, err := c.Do("SET", k, v)
	Msg.EC(err)
}

func RCSetStr(c redis.Conn, k string, v string) {
	_, err := c.Do("SET", k, v)
	Msg.EC(err)
}

func RCSetFloat(c redis.Conn, k string, v float64) {
	_, err := c.Do("SET", k, v)
	Msg.EC(err)
}

func RCGetStr(c redis.Conn, k string) string {
	s, err := redis.String(c.Do("GET", k))
	if err != nil {
		s = ""
	}
	return s
}

func RCGetInt(c redis.Conn, k string) int64 {
	i, err := redis.Int64(c.Do("GET", k))
	if err != nil {
		i = 0
	}
	return i
}

func RCGetFloat(c redis.Conn, k string) float64 {
	f, err := redis.Float64(c.Do("GET", k))
	if err != nil {
		f = 0
	}
	return f
}

// RCPopStr - SPOP a member from a job set; SETISEMPTY when the set is exhausted
func RCPopStr(c redis.Conn, k string) string {
	s, err := redis.String(c.Do("SPOP", k))
	if err != nil {
		s = SETISEMPTY
	}
	return s
}

// RCSAdd - SADD members to a set
func RCSAdd(c redis.Conn, k string, members []string) {
	for _, m := range members {
		e := c.Send("SADD", k, m)
		Msg.EC(e)
	}
	e := c.Flush()
	Msg.EC(e)
}

// RCScard - how many members remain in the set?
func RCScard(c redis.Conn, k string) int {
	n, err := redis.Int(c.Do("SCARD", k))
	if err != nil {
		n = 0
	}
	return n
}

// RCExpire - let stale keys collect themselves
func RCExpire(c redis.Conn, k string, after time.Duration) {
	_, err := c.Do("EXPIRE", k, int64(after.Seconds()))
	Msg.EC(err)
}
