//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
)

var (
	Msg           = lnch.NewMessageMakerWithDefaults()
	AllSessions   = MakeSessionVault()
	AllAuthorized = MakeAuthorizedVault()
	WebsocketPool = WSFillNewPool()
	WSInfo        = BuildWSInfoHubIf()
)
