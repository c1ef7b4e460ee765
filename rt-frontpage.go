//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/p-laskaris/AristarchosGoServer/internal/lnch"
	"github.com/p-laskaris/AristarchosGoServer/internal/vlt"
	"github.com/p-laskaris/AristarchosGoServer/internal/vv"
	"net/http"
	"runtime"
	"text/template"
)

var (
	// have the option to return/generate some sort of fail message...
	emptyjsreturn = func(c echo.Context) error { return c.JSONPretty(http.StatusOK, "", vv.JSONINDENT) }
)

//
// ROUTING
//

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	// the page is mostly empty scaffolding: the client JS fills the searchbox, selection table, and results
	// area by calling the /get/json/... and /selection/... routes

	const (
		FPTMPL = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{index . "longver" }}</title>
</head>
<body>
{{index . "authhtm" }}
<div id="searchfield">
    <form id="wordsearchform">
        <input type="text" name="seeking" id="wordsearchbox" placeholder="(looking for...)" size="30" value="">
        <input type="text" name="proximate" id="proximatesearchbox" placeholder="(near... and within...)" size="30" value="">
    </form>
    <span id="searchinfo">results: {{index . "resultcontext" }} lines of context; within {{index . "proxval" }}</span>
</div>
<table id="selectionstable">
    <tbody>
    <tr>
        <th colspan="5" id="timerestrictions"></th>
    </tr>
    <tr>
        <td class="infocells" id="selectioninfocell" title="Selection list"></td>
        <td class="infocellx" id="exclusioninfocell" title="Exclusion list"></td>
    </tr>
    </tbody>
</table>
<div id="pollingdata"></div>
<div id="searchsummary"></div>
<div id="displayresults"></div>
<div id="selectionscriptholder"></div>
<div id="aboutbox" class="unobtrusive">{{index . "env" }}</div>
</body>
</html>`
	)

	// will set if missing
	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)

	ahtm := vv.AUTHHTML
	if !lnch.Config.Authenticate {
		ahtm = ""
	}

	gc := lnch.GitCommit
	if gc == "" {
		gc = "UNKNOWN"
	}
	ver := fmt.Sprintf("%s: %s [git: %s]", vv.MYNAME, vv.VERSION+lnch.VersSuppl, gc)

	env := fmt.Sprintf("%s: %s - %s (%d workers)", runtime.Version(), runtime.GOOS, runtime.GOARCH, lnch.Config.WorkerCount)

	subs := map[string]interface{}{
		"version":       vv.VERSION + lnch.VersSuppl,
		"longver":       ver,
		"authhtm":       ahtm,
		"env":           env,
		"user":          "Anonymous",
		"resultcontext": s.HitContext,
		"proxval":       s.Proximity}

	tmpl, e := template.New("fp").Parse(FPTMPL)
	Msg.EC(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	Msg.EC(err)

	return c.HTML(http.StatusOK, b.String())
}
