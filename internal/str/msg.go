//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"runtime"
	"time"

	"github.com/p-laskaris/AristarchosGoServer/internal/mm"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
)

// Msg - the package logger; lnch will reconfigure it at startup
var Msg = &mm.MessageMaker{
	Lnc:  time.Now(),
	LNm:  vv.MYNAME,
	SNm:  vv.SHORTNAME,
	Ver:  vv.VERSION,
	Win:  runtime.GOOS == "windows",
	LLvl: vv.DEFAULTGOLOGLEVEL,
}
