//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	// the pools live behind atomic pointers: a rebuild can swap them while searches are in flight
	sqlpool atomic.Pointer[pgxpool.Pool]
	rwpool  atomic.Pointer[pgxpool.Pool]
	// poolcleaning - set when a worker hits a lost connection; the next search will rebuild the pools first
	poolcleaning atomic.Bool
	poolrebuild  sync.Mutex
)

// Pool - the shared read-only pgxpool
func Pool() *pgxpool.Pool {
	return sqlpool.Load()
}

// WriterPool - the pgxpool for the writer role; temp table DDL runs here
func WriterPool() *pgxpool.Pool {
	return rwpool.Load()
}

// PGConn - the common face of a pooled and an unpooled postgres connection
type PGConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Release()
}

// directconn - an unpooled connection that satisfies PGConn
type directconn struct {
	*pgx.Conn
}

func (dc directconn) Release() {
	_ = dc.Conn.Close(context.Background())
}

// LaunchPools - build the reader and writer pgxpools and install them as the shared pools
func LaunchPools() {
	sqlpool.Store(FillDBConnectionPool(*lnch.Config))
	FillRWPool(*lnch.Config)
}

// FillDBConnectionPool - build the pgxpool that the searches will Acquire() from
func FillDBConnectionPool(cfg str.CurrentConfiguration) *pgxpool.Pool {
	// if min < WorkerCount the search will be slowed significantly
	// and remember that idle connections close, so you can have 20 workers fighting for one connection: very bad news

	// max should cap a networked server's resource allocation to the equivalent of N simultaneous users
	// after that point there should be a steep drop-off in responsiveness

	mn := cfg.WorkerCount
	mx := vv.SIMULTANEOUSSEARCHES * cfg.WorkerCount

	return buildpoolfromlogin(cfg.PGLogin, mn, mx)
}

// FillRWPool - build the writer pgxpool; when no separate writer login is configured the reader pool does double duty
func FillRWPool(cfg str.CurrentConfiguration) {
	// the writer sees only temp table DDL, so it can stay small
	if cfg.PGRWLogin.User == "" || cfg.PGRWLogin == cfg.PGLogin {
		rwpool.Store(Pool())
		return
	}
	rwpool.Store(buildpoolfromlogin(cfg.PGRWLogin, 1, cfg.WorkerCount))
}

func buildpoolfromlogin(pl str.PostgresLogin, mn int, mx int) *pgxpool.Pool {
	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) via '%s'"
		FAIL2   = "Could not connect to PostgreSQL"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is a configuration problem; see the following response from PostgreSQL:`
	)

	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, url))
		os.Exit(0)
	}

	thepool, e := pgxpool.NewWithConfig(context.Background(), config)
	if e != nil {
		Msg.MAND(FAIL2)
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, pl.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			Msg.CRIT(parts[1])
		}
		Msg.ExitOrHang(0)
	}
	return thepool
}

// GetDBConnection - Acquire() a read-only connection; fall back to a direct connection if the pool is exhausted
func GetDBConnection() PGConn {
	RebuildPoolIfFlagged()
	return acquireorfallback(Pool(), lnch.Config.PGLogin)
}

// GetRWConnection - Acquire() a writer connection; the search workers want one when a query carries temp table DDL
func GetRWConnection() PGConn {
	RebuildPoolIfFlagged()
	return acquireorfallback(WriterPool(), lnch.Config.PGRWLogin)
}

func acquireorfallback(pool *pgxpool.Pool, pl str.PostgresLogin) PGConn {
	const (
		FAIL1   = "acquireorfallback() could not Acquire() from the connection pool."
		FAIL2   = `Your password in '%s' is incorrect? Too many connections to the server?`
		WARN1   = "acquireorfallback() pool exhausted; falling back to a direct connection"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
	)

	dbc, e := pool.Acquire(context.Background())
	if e == nil {
		return dbc
	}

	if strings.Contains(e.Error(), ERRRUN) {
		Msg.MAND(FAIL1)
		Msg.CRIT(fmt.Sprintf(FAILRUN, ERRRUN, pl.Port))
		Msg.ExitOrHang(0)
	}

	// the pool is likely just busy; a direct connection can still serve this caller
	Msg.WARN(WARN1)
	dc, e2 := DirectConnect(pl)
	if e2 != nil {
		Msg.MAND(FAIL1)
		Msg.MAND(fmt.Sprintf(FAIL2, vv.CONFIGBASIC))
		Msg.ExitOrHang(0)
	}
	return dc
}

// DirectConnect - an unpooled connection for when a pool is exhausted or broken
func DirectConnect(pl str.PostgresLogin) (PGConn, error) {
	const (
		UTPL = "postgres://%s:%s@%s:%d/%s"
	)
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName)
	conn, e := pgx.Connect(context.Background(), url)
	if e != nil {
		return nil, e
	}
	return directconn{conn}, nil
}

// FlagPoolForCleaning - a worker lost its connection; request a pool rebuild before the next search
func FlagPoolForCleaning() {
	poolcleaning.Store(true)
}

// RebuildPoolIfFlagged - reset the pools if a connection loss was flagged
func RebuildPoolIfFlagged() {
	if !poolcleaning.Load() {
		return
	}

	poolrebuild.Lock()
	defer poolrebuild.Unlock()

	if !poolcleaning.Load() {
		// somebody else just did the work
		return
	}

	Msg.WARN("RebuildPoolIfFlagged() is resetting the postgres connection pools")
	oldro := Pool()
	oldrw := WriterPool()
	sqlpool.Store(FillDBConnectionPool(*lnch.Config))
	FillRWPool(*lnch.Config)
	if oldro != nil {
		oldro.Close()
	}
	if oldrw != nil && oldrw != oldro {
		oldrw.Close()
	}
	poolcleaning.Store(false)
}
