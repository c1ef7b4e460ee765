//    AristarchosGoServer
//    Copyright: P Laskaris 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrerolledQueryBinds(t *testing.T) {
	withplaceholder := PrerolledQuery{
		PsqlQuery: `SELECT * FROM lt0472 WHERE stripped_line ~ $1 AND ( (index BETWEEN 100 AND 110) )`,
		PsqlData:  "",
	}
	// an empty pattern still has to be bound: "$1" with no argument is an execution error
	assert.True(t, withplaceholder.Binds())

	contextgrab := PrerolledQuery{
		PsqlQuery: `SELECT * FROM lt0472 WHERE (index BETWEEN 100 AND 110) ORDER by index`,
	}
	assert.False(t, contextgrab.Binds())
}
