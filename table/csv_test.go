package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/proxnet/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relocs = `ID,X,Y,timegroup,datetime,day,herd,collared
A,10,20.5,1,2024-01-01T00:00:00Z,2024-01-01,north,true
B,15,NA,1,2024-01-01T00:05:00Z,2024-01-01,north,false
C,-3,7,2,2024-01-01T00:10:00Z,2024-01-02,south,true
`

func TestReadCSV_InfersKinds(t *testing.T) {
	tbl, err := table.ReadCSV(strings.NewReader(relocs))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Rows())

	want := map[string]table.Kind{
		"ID":        table.KindString,
		"X":         table.KindInt,
		"Y":         table.KindFloat,
		"timegroup": table.KindInt,
		"datetime":  table.KindDateTime,
		"day":       table.KindDate,
		"herd":      table.KindString,
		"collared":  table.KindBool,
	}
	for name, k := range want {
		c, ok := tbl.Column(name)
		require.True(t, ok, name)
		assert.Equal(t, k, c.Kind(), name)
	}

	y, err := tbl.Value(1, "Y")
	require.NoError(t, err)
	assert.True(t, y.IsNull())
}

func TestReadCSV_Options(t *testing.T) {
	in := "id;tg\n1;-\n2;5\n"
	tbl, err := table.ReadCSV(strings.NewReader(in),
		table.WithDelimiter(';'),
		table.WithNullTokens("-"),
		table.WithColumnKind("id", table.KindString),
	)
	require.NoError(t, err)

	id, _ := tbl.Column("id")
	assert.Equal(t, table.KindString, id.Kind())
	tg, _ := tbl.Column("tg")
	assert.Equal(t, table.KindInt, tg.Kind())
	assert.True(t, tg.At(0).IsNull())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, table.ErrEmptyCSV)

	_, err = table.ReadCSV(strings.NewReader("a\nx\n"), table.WithColumnKind("a", table.KindInt))
	require.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl, err := table.ReadCSV(strings.NewReader(relocs))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tbl))
	assert.Equal(t, relocs, buf.String())
}
