package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Meeting_Title, Duration_Minutes ,Participants,Actual_Speakers,Decision_Made,Agenda_Provided,Follow_Up_Sent,Could_Be_Async
Weekly Standup,30,8,6,Yes,yes,YES,no

Status Sync,60,10,2,no,no,no,yes

Retro,45,5
`

func TestParse_SimpleSplit(t *testing.T) {
	table, err := Parse(sampleCSV)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Meeting_Title", "Duration_Minutes", "Participants", "Actual_Speakers",
		"Decision_Made", "Agenda_Provided", "Follow_Up_Sent", "Could_Be_Async",
	}, table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Weekly Standup", table.Rows[0]["Meeting_Title"])
	assert.Equal(t, "30", table.Rows[0]["Duration_Minutes"])
	assert.Equal(t, "yes", table.Rows[1]["Could_Be_Async"])
}

func TestParse_ShortRowLeavesTrailingFieldsUndefined(t *testing.T) {
	table, err := Parse(sampleCSV)
	require.NoError(t, err)

	retro := table.Rows[2]
	assert.Equal(t, "5", retro["Participants"])
	_, ok := retro["Actual_Speakers"]
	assert.False(t, ok)
	assert.Len(t, retro, 3)
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	table, err := Parse("A,B\n1,2,3,4\n")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, Row{"A": "1", "B": "2"}, table.Rows[0])
}

func TestParse_CRLF(t *testing.T) {
	table, err := Parse("Meeting_Title,Duration_Minutes\r\nPlanning,90\r\n\r\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"Meeting_Title", "Duration_Minutes"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "90", table.Rows[0]["Duration_Minutes"])
}

func TestParse_SimpleSplitDoesNotHonourQuotes(t *testing.T) {
	table, err := Parse("Meeting_Title,Duration_Minutes\n\"Plan, review\",30\n")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, `"Plan`, table.Rows[0]["Meeting_Title"])
	assert.Equal(t, `review"`, table.Rows[0]["Duration_Minutes"])
}

func TestParse_QuotedFields(t *testing.T) {
	table, err := Parse("Meeting_Title,Duration_Minutes\n\"Plan, review\",30\n\nRetro, 45\n", WithQuotedFields())
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Plan, review", table.Rows[0]["Meeting_Title"])
	assert.Equal(t, "30", table.Rows[0]["Duration_Minutes"])
	assert.Equal(t, "45", table.Rows[1]["Duration_Minutes"])
}

func TestParse_EmptyInput(t *testing.T) {
	for _, opts := range [][]ParseOption{nil, {WithQuotedFields()}} {
		table, err := Parse("", opts...)
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
	}
}
