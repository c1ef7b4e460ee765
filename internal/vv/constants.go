//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Aristarchos Golang Server"
	SHORTNAME = "AGS"
	VERSION   = "1.0.0"
	PROJURL   = "https://github.com/p-laskaris/AristarchosGoServer"

	GREEKCORP      = "gr"
	LATINCORP      = "lt"
	PAPYRUSCORP    = "dp"
	INSCRIPTCORP   = "in"
	CHRISTINSC     = "ch"
	DEFAULTCORPORA = "{\"gr\": true, \"lt\": true, \"in\": false, \"ch\": false, \"dp\": false}"

	AVGWORDSPERLINE = 8 // hard coding a suspect assumption
	BLACKANDWHITE   = false
	CONFIGLOCATION  = "."
	CONFIGALTAPTH   = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGAUTH      = "ags-users.json"
	CONFIGBASIC     = "ags-conf.json"
	CONFIGPROLIX    = "ags-prolix-conf.json"

	DBLMMAPSIZE              = 151701 // [AGS] [B1: 0.310s][Δ: 0.310s] unnested lemma map built (151701 items)
	DEFAULTBROWSERCTX        = 14
	DEFAULTCOLUMN            = "stripped_line"
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	DEFAULTHITLIMIT          = 250
	DEFAULTLINESOFCONTEXT    = 4
	DEFAULTPROXIMITY         = 1
	DEFAULTPROXIMITYSCOPE    = "lines"
	DEFAULTPSQLHOST          = "127.0.0.1"
	DEFAULTPSQLUSER          = "arist_ro"
	DEFAULTPSQLRWUSER        = "arist_rw"
	DEFAULTPSQLPORT          = 5432
	DEFAULTPSQLDB            = "aristarchosDB"
	DEFAULTREDISHOST         = "localhost:6379"
	DEFAULTQUERYSYNTAX       = "~"
	FIRSTSEARCHLIM           = 750000 // 149570 lines in Cicero (lt0474); all 485 forms of »δείκνυμι« will pass 50k
	GCPAUSE                  = 120 * time.Second // the ManualGC sweep interval
	INCERTADATE              = 2500
	JOBFEEDERLIST            = "list"
	JOBFEEDERQUEUE           = "queue"
	JOBFEEDERREDIS           = "redis"
	JSONINDENT               = "  "
	LENGTHOFAUTHORID         = 6
	LENGTHOFWORKID           = 3
	MAXBROWSERCONTEXT        = 60
	MAXDATE                  = 1500
	MAXDATESTR               = "1500"
	MAXDISTANCE              = 10
	MAXECHOREQPERSECONDPERIP = 60 // c. 20 to load the front page for the first time; 40 lets you double-load
	MAXHITLIMIT              = 2500
	MAXINPUTLEN              = 64
	MAXLEMMACHUNKSIZE        = 25
	MAXLINESHITCONTEXT       = 30
	MAXSEARCHINFOLISTLEN     = 100
	MAXSEARCHPERIPADDR       = 2
	MAXSEARCHTOTAL           = 4 // two-part searches generate subsearches and kick your total active search count over the number of "clicked" searches from RtSearch()
	MAXTITLELENGTH           = 110
	MINDATE                  = -850
	MINDATESTR               = "-850"
	MPCOMMITCOUNT            = 500 // bulk db walkers call CheckCommit() every N rows
	NUMBEROFCITATIONLEVELS   = 6
	ORDERBY                  = "index"
	POLLEVERYNTABLES         = 34 // 3455 is the max number of tables in a search...
	PROGFEEDERLOCAL          = "local"
	PROGFEEDERREDIS          = "redis"
	REDISJOBKEYTTL           = 600 * time.Second
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	SIMULTANEOUSSEARCHES     = 3 // cap on the number of db connections at (S * Config.WorkerCount)
	SORTBY                   = "shortname"
	TEMPTABLETHRESHOLD       = 100 // if a table requires N "between" clauses, build a temptable instead to gather the needed lines
	TERMINATIONS             = `(\s|\.|\]|\<|⟩|’|”|\!|,|:|;|\?|·|$)`
	TICKERISACTIVE           = false
	TICKERDELAY              = 30 * time.Second
	TIMEOUTRD                = 15 * time.Second  // only set if Config.Authenticate is true (and so in a "serve the net" situation)
	TIMEOUTWR                = 120 * time.Second // *very* generous, but some searches are slow/long
	USEGZIP                  = false
	VARIADATE                = 2000
	WRITEPERMS               = 0644
	WSPOLLINGPAUSE           = 10000000 * 10 // 10000000 * 10 = every .1s

	// UNACCEPTABLEINPUT       = `|"'!@:,=+_\/`
	UNACCEPTABLEINPUT = `"'!@:,=_/` // we want to be able to do regex...; echo+net/url means some can't even make it into a parser: #%&;
	USELESSINPUT      = `’“”̣`      // these can't be found and so should be dropped; note the subscript dot at the end
)
