//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/p-laskaris/AristarchosGoServer/internal/str"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"aristarchosDB\" ,\"User\": \"arist_rw\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL4 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL5 = `Could not open '%s'`
		FAIL6 = "unknown job feeder '%s'; valid values are 'list', 'queue' and 'redis'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s/%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL5, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else {
		Msg.TMI(fmt.Sprintf(FAIL3, prolixcfg))
	}

	// an old CONFIGPROLIX might mean you set the following to zero; that is very bad...
	if Config.MaxSrchTot == 0 {
		Config.MaxSrchTot = vv.MAXSEARCHTOTAL
	}

	if Config.MaxSrchIP == 0 {
		Config.MaxSrchIP = vv.MAXSEARCHPERIPADDR
	}

	if Config.MPCommit == 0 {
		Config.MPCommit = vv.MPCOMMITCOUNT
	}

	if Config.JobFeeder == "" {
		Config.JobFeeder = "list"
	}

	if Config.ProgFeeder == "" {
		Config.ProgFeeder = "local"
	}

	args := os.Args[1:]

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-au":
			Config.Authenticate = true
		case "-bw":
			Config.BlackAndWhite = true
		case "-db":
			Config.DbDebug = true
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			printhelp()
			os.Exit(0)
		case "-jf":
			Config.JobFeeder = args[i+1]
		case "-mi":
			mi, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxSrchIP = mi
		case "-ms":
			ms, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxSrchTot = ms
		case "-pc":
			Config.ProfileCPU = true
		case "-pf":
			Config.ProgFeeder = args[i+1]
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGLogin = pl
		case "-pm":
			Config.ProfileMEM = true
		case "-pw":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGRWLogin = pl
		case "-q":
			Config.QuietStart = true
		case "-rd":
			js := args[i+1]
			var rl str.RedisLogin
			err := json.Unmarshal([]byte(js), &rl)
			if err != nil {
				Msg.MAND(FAIL1)
			}
			Config.RLogin = rl
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-st":
			Config.SelfTest += 1
		case "-tk":
			Config.TickerActive = true
		case "-ui":
			Config.BadChars = args[i+1]
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-zl":
			Config.ZapLunates = true
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	SetConfigPass(&confc, "")

	// an older config file has no writer stanza; the writer side then shares the reader login
	if Config.PGRWLogin.User == "" {
		Config.PGRWLogin = Config.PGLogin
	} else if Config.PGRWLogin.Pass == "" {
		Config.PGRWLogin.Pass = Config.PGLogin.Pass
	}

	switch Config.JobFeeder {
	case "list", "queue", "redis":
		// ok
	default:
		Msg.CRIT(fmt.Sprintf(FAIL6, Config.JobFeeder))
		Config.JobFeeder = "list"
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL4, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
	UpdateMessageMakerWithConfig(str.Msg)
}

// printhelp - the terse flag list
func printhelp() {
	const (
		HELP = `command line options:
   -au     require authentication
   -bw     disable color output in the console
   -db     debug SQL: log the searches
   -el N   echo log level (0-3)
   -gl N   golang log level (0-5)
   -gz     enable gzip compression
   -jf S   job feeder: 'list', 'queue' or 'redis'
   -mi N   maximum simultaneous searches per ip address
   -ms N   maximum total simultaneous searches
   -pc     profile cpu usage
   -pf S   progress feeder: 'local' or 'redis'
   -pg JS  supply postgres reader credentials as json
   -pm     profile memory usage
   -pw JS  supply postgres writer credentials as json
   -q      quiet start
   -rd JS  supply redis credentials as json
   -sa S   server address
   -sp N   server port
   -tk     enable the uptime ticker
   -ui S   unacceptable input characters
   -v      print version and exit
   -vv     print full version info and exit
   -wc N   worker count
   -zl     zap lunate sigmas`
	)
	PrintVersion(*Config)
	fmt.Println(HELP)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.Authenticate = false
	c.BadChars = vv.UNACCEPTABLEINPUT
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.BrowserCtx = vv.DEFAULTBROWSERCTX
	c.DbDebug = false
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.JobFeeder = "list"
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.ManualGC = false
	c.MaxSrchIP = vv.MAXSEARCHPERIPADDR
	c.MaxSrchTot = vv.MAXSEARCHTOTAL
	c.MPCommit = vv.MPCOMMITCOUNT
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.ProgFeeder = "local"
	c.QuietStart = false
	c.SaveProgress = false
	c.SelfTest = 0
	c.TickerActive = vv.TICKERISACTIVE
	c.WorkerCount = runtime.NumCPU()
	c.ZapLunates = false
	e := json.Unmarshal([]byte(vv.DEFAULTCORPORA), &c.DefCorp)
	if e != nil {
		fmt.Println("BuildDefaultConfig() could not json.Unmarshal DEFAULTCORPORA: " + vv.DEFAULTCORPORA)
	}

	c.PGLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGRWLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLRWUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.RLogin = str.RedisLogin{
		Addr:     vv.DEFAULTREDISHOST,
		Password: "",
		DB:       0,
	}

	return &c
}

// SetConfigPass - make sure that Config.PGLogin.Pass != ""
func SetConfigPass(cfg *str.CurrentConfiguration, cf string) {
	const (
		FAIL3     = "FAILED to load database credentials from any of '%s', '%s' or '%s'"
		FAIL4     = "At a minimum be sure that a configuration file exists and that it has the following format:"
		FAIL6     = "Could not open '%s'"
		BLANKPASS = "PostgreSQLPassword is blank. Check your configuration file.\n"
		MINCONFIG = `{"PostgreSQLPassword": "YOURPASSWORDHERE"}` + "\n"
	)
	type ConfigFile struct {
		PostgreSQLPassword string
	}

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	if cf == "" {
		cf = fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	}

	acf := fmt.Sprintf("%s/%s", h, vv.CONFIGBASIC)

	if Config.PGLogin.Pass == "" {
		Config.PGLogin = str.PostgresLogin{}
		cfa, ee := os.Open(cf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, cf))
		}
		cfb, ee := os.Open(acf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, acf))
		}

		defer func(cfa *os.File) {
			err := cfa.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfa)
		defer func(cfb *os.File) {
			err := cfb.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfb)

		decodera := json.NewDecoder(cfa)
		confa := ConfigFile{}
		erra := decodera.Decode(&confa)

		decoderb := json.NewDecoder(cfb)
		confb := ConfigFile{}
		errb := decoderb.Decode(&confb)

		if erra != nil && errb != nil && cfg.PGLogin.DBName == "" {
			Msg.CRIT(fmt.Sprintf(FAIL3, cf, acf, fmt.Sprintf("%s/%s", h, vv.CONFIGPROLIX)))
			Msg.CRIT(FAIL4)
			fmt.Print(MINCONFIG)
			Msg.ExitOrHang(0)
		}

		thecfg := ConfigFile{}
		if erra == nil {
			thecfg = confa
		} else {
			thecfg = confb
		}

		if thecfg.PostgreSQLPassword == "" {
			Msg.MAND(BLANKPASS)
		}

		Config.PGLogin = str.PostgresLogin{
			Host:   vv.DEFAULTPSQLHOST,
			Port:   vv.DEFAULTPSQLPORT,
			User:   vv.DEFAULTPSQLUSER,
			DBName: vv.DEFAULTPSQLDB,
			Pass:   thecfg.PostgreSQLPassword,
		}
	}
}
