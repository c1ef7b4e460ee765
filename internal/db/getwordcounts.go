//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/p-laskaris/AristarchosGoServer/internal/gen"
	"github.com/p-laskaris/AristarchosGoServer/internal/str"
)

// GetWordCounts - return total word count figures for each word in a slice of words
func GetWordCounts(ww []string) map[string]str.DbWordCount {
	const (
		TTT  = `CREATE TEMPORARY TABLE ttw_%s AS SELECT values AS wordforms FROM unnest(ARRAY[%s]) values`
		WCQT = `SELECT entry_name, total_count FROM wordcounts_%s WHERE EXISTS
		(SELECT 1 FROM ttw_%s temptable WHERE temptable.wordforms = wordcounts_%s.entry_name)`
		CHARR = `abcdefghijklmnopqrstuvwxyzαβψδεφγηιξκλμνοπρτυωχθζϲ`
	)

	dbconn := GetDBConnection()
	defer dbconn.Release()

	// wordcount tables are keyed to the first letter of the word; "wordcounts_0" catches the leftovers

	byfirstlett := make(map[string][]string)

	for _, w := range ww {
		init := gen.StripaccentsRUNE([]rune(w))
		if len(init) == 0 {
			continue
		}
		i := string(init[0])
		if strings.Contains(CHARR, i) {
			byfirstlett[i] = append(byfirstlett[i], strings.Replace(w, "'", "", -1))
		} else {
			byfirstlett["0"] = append(byfirstlett["0"], strings.Replace(w, "'", "", -1))
		}
	}

	// aristarchosDB=# CREATE TEMPORARY TABLE ttw AS
	//    SELECT values AS wordforms FROM
	//      unnest(ARRAY['κόραϲ', 'κόραι', 'κῶραι', 'κούρῃϲιν', 'κούραϲ'])
	//    values;
	//
	//SELECT entry_name, total_count FROM wordcounts_κ WHERE EXISTS (
	//  (SELECT 1 FROM ttw temptable WHERE temptable.wordforms = wordcounts_κ.entry_name )
	//);

	wcc := make(map[string]str.DbWordCount)
	var wc str.DbWordCount

	each := []any{&wc.Word, &wc.Total}

	rfnc := func() error {
		wcc[wc.Word] = wc
		return nil
	}

	done := 0
	for l := range byfirstlett {
		arr := fmt.Sprintf("'%s'", strings.Join(byfirstlett[l], "', '"))
		rnd := strings.Replace(uuid.New().String(), "-", "", -1)
		_, ee := dbconn.Exec(context.Background(), fmt.Sprintf(TTT, rnd, arr))
		Msg.EC(ee)

		q := fmt.Sprintf(WCQT, l, rnd, l)
		rr, ee := dbconn.Query(context.Background(), q)
		Msg.EC(ee)

		_, er := pgx.ForEachRow(rr, each, rfnc)
		Msg.EC(er)

		done += len(byfirstlett[l])
		CheckCommit(done)
	}

	return wcc
}

// GetIndividualHeadwordCount - aggregate corpus figures for a single dictionary headword
func GetIndividualHeadwordCount(word string) str.DbHeadwordCount {
	const (
		QT   = `SELECT entry_name, total_count, frequency_classification FROM dictionary_headword_wordcounts WHERE entry_name=$1`
		WARN = "GetIndividualHeadwordCount() found nothing for '%s'"
	)

	dbconn := GetDBConnection()
	defer dbconn.Release()

	var hwc str.DbHeadwordCount
	e := dbconn.QueryRow(context.Background(), QT, word).Scan(&hwc.Entry, &hwc.Total, &hwc.FrqCla)
	if e != nil {
		Msg.PEEK(fmt.Sprintf(WARN, word))
		hwc = str.DbHeadwordCount{Entry: word}
	}

	return hwc
}
