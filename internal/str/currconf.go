//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	Authenticate  bool
	BadChars      string
	BlackAndWhite bool
	BrowserCtx    int
	DbDebug       bool
	DefCorp       map[string]bool
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip          bool
	HostIP        string
	HostPort      int
	JobFeeder     string // "list", "queue" or "redis"
	LogLevel      int
	ManualGC      bool // see MessageMaker.LogPaths()
	MaxSrchIP     int
	MaxSrchTot    int
	MPCommit      int // bulk walkers call CheckCommit() every N rows
	PGLogin       PostgresLogin
	PGRWLogin     PostgresLogin // writer role for temp table DDL; an empty User means "share PGLogin"
	ProfileCPU    bool
	ProfileMEM    bool
	ProgFeeder    string // "local" or "redis"
	QuietStart    bool
	RLogin        RedisLogin
	SaveProgress  bool // keep finished progress keys around in redis
	SelfTest      int
	TickerActive  bool
	WorkerCount   int
	ZapLunates    bool
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}

type RedisLogin struct {
	Addr     string
	Password string
	DB       int
}
