//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

const (
	WORLINETEMPLATE = `wkuniversalid, index,
			level_05_value, level_04_value, level_03_value, level_02_value, level_01_value, level_00_value,
			marked_up_line, accented_line, stripped_line, hyphenated_words, annotations`
)

//
// This file should contain the *exhaustive* collection of functions that execute searches
// that return either a WorkLineBundle or a DbWorkline
//

// AcquireWorkLineBundle - use a PrerolledQuery to acquire a *WorkLineBundle
func AcquireWorkLineBundle(prq str.PrerolledQuery, dbconn PGConn) *str.WorkLineBundle {
	b, err := WorkLineBundleOrErr(prq, dbconn)
	Msg.EC(err)
	return b
}

// WorkLineBundleOrErr - as AcquireWorkLineBundle, but the caller sees the error; the search workers want to retry on a lost connection
func WorkLineBundleOrErr(prq str.PrerolledQuery, dbconn PGConn) (*str.WorkLineBundle, error) {
	// NB: you have to use a dbconn.Exec() and can't use Pool().Exec() because with the latter the temp table will
	// get separated from the main query:
	// ERROR: relation "{ttname}" does not exist (SQLSTATE 42P01)

	// [a] build a temp table if needed

	if prq.TempTable != "" {
		_, err := dbconn.Exec(context.Background(), prq.TempTable)
		if err != nil {
			return &str.WorkLineBundle{}, err
		}
	}

	// [b] execute the main query (nb: query needs to satisfy needs of RowToStructByPos in [c])

	var foundrows pgx.Rows
	var err error
	if prq.Binds() {
		// NB: bind whatever PsqlData holds, even "": a statement with "$1" and no argument is a pgx error
		foundrows, err = dbconn.Query(context.Background(), prq.PsqlQuery, prq.PsqlData)
	} else {
		foundrows, err = dbconn.Query(context.Background(), prq.PsqlQuery)
	}
	if err != nil {
		return &str.WorkLineBundle{}, err
	}

	// [c] convert the finds into []DbWorkline

	thesefinds, err := pgx.CollectRows(foundrows, pgx.RowToStructByPos[str.DbWorkline])
	if err != nil {
		return &str.WorkLineBundle{}, err
	}

	return &str.WorkLineBundle{Lines: thesefinds}, nil
}

// SimpleContextGrabber - grab a *WorkLineBundle centered around the focusline
func SimpleContextGrabber(table string, focus int, context int) *str.WorkLineBundle {
	const (
		QTMPL = "SELECT %s FROM %s WHERE (index BETWEEN %d AND %d) ORDER by index"
	)

	dbconn := GetDBConnection()
	defer dbconn.Release()

	low := focus - context
	high := focus + context

	var prq str.PrerolledQuery
	prq.TempTable = ""
	prq.PsqlQuery = fmt.Sprintf(QTMPL, WORLINETEMPLATE, table, low, high)

	foundlines := AcquireWorkLineBundle(prq, dbconn)

	return foundlines
}

// GrabOneLine - return a single DbWorkline from a table
func GrabOneLine(table string, line int) str.DbWorkline {
	const (
		QTMPL = "SELECT %s FROM %s WHERE index = %d"
	)

	dbconn := GetDBConnection()
	defer dbconn.Release()

	var prq str.PrerolledQuery
	prq.TempTable = ""
	prq.PsqlQuery = fmt.Sprintf(QTMPL, WORLINETEMPLATE, table, line)
	foundlines := AcquireWorkLineBundle(prq, dbconn)
	if foundlines.Len() != 0 {
		// "index = %d" in QTMPL ought to mean you can never have len(foundlines) > 1 because index values are unique
		return foundlines.FirstLine()
	} else {
		return str.DbWorkline{}
	}
}
