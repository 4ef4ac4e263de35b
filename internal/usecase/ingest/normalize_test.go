package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

func TestFromRow_Normalizes(t *testing.T) {
	got, ok := FromRow(Row{
		ColumnTitle:          "Status Sync",
		ColumnDuration:       "60",
		ColumnParticipants:   "10",
		ColumnActiveSpeakers: "2",
		ColumnDecisionMade:   "no",
		ColumnAgenda:         "No",
		ColumnFollowUp:       "no",
		ColumnCouldBeAsync:   "Yes",
	})

	require.True(t, ok)
	assert.Equal(t, entities.MeetingRecord{
		Title:              "Status Sync",
		DurationMinutes:    60,
		TotalParticipants:  10,
		ActiveParticipants: 2,
		DecisionsCount:     0,
		HadAgenda:          false,
		FollowUpSent:       false,
		CouldBeAsync:       entities.AsyncYes,
		Source:             entities.SourceTabular,
	}, got)
}

func TestFromRow_DropsRowsWithoutTitleOrDuration(t *testing.T) {
	_, ok := FromRow(Row{ColumnDuration: "30"})
	assert.False(t, ok)

	_, ok = FromRow(Row{ColumnTitle: "Retro"})
	assert.False(t, ok)

	_, ok = FromRow(Row{ColumnTitle: "", ColumnDuration: "30"})
	assert.False(t, ok)
}

func TestFromRow_DefaultsDegradeSafely(t *testing.T) {
	got, ok := FromRow(Row{ColumnTitle: "Retro", ColumnDuration: "soon", ColumnCouldBeAsync: "partially"})

	require.True(t, ok)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, 0, got.TotalParticipants)
	assert.Equal(t, 0, got.ActiveParticipants)
	assert.Equal(t, 0, got.DecisionsCount)
	assert.Equal(t, entities.AsyncNo, got.CouldBeAsync)
}

func TestFromRow_DecisionIsBinary(t *testing.T) {
	got, ok := FromRow(Row{ColumnTitle: "Planning", ColumnDuration: "45", ColumnDecisionMade: "YES"})

	require.True(t, ok)
	assert.Equal(t, 1, got.DecisionsCount)
}

func TestParseDuration(t *testing.T) {
	tests := map[string]int{
		"45":     45,
		" 90 ":   90,
		"45 min": 45,
		"":       60,
		"abc":    60,
		"0":      60,
		"-15":    60,
		"+20":    20,
		"1.5":    1,
		"999999": 999999,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseDuration(in), "input %q", in)
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 12, ParseCount("12"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("many"))
	assert.Equal(t, 0, ParseCount("-3"))
}

func TestRecords_KeepsOrderAndCountsSkipped(t *testing.T) {
	table, err := Parse("Meeting_Title,Duration_Minutes\nA,30\n,45\nB,\nC,15\n")
	require.NoError(t, err)

	records, skipped := Records(table)

	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Title)
	assert.Equal(t, "C", records[1].Title)
	assert.Equal(t, 2, skipped)
}

func TestFromForm_AppliesFormDefaults(t *testing.T) {
	today := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	got := FromForm(ManualInput{CouldBeAsync: "Partially"}, today)

	assert.Equal(t, entities.UntitledMeeting, got.Title)
	assert.Equal(t, today, got.Date)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, 5, got.TotalParticipants)
	assert.Equal(t, 3, got.ActiveParticipants)
	assert.Equal(t, entities.AsyncPartially, got.CouldBeAsync)
	assert.Equal(t, entities.SourceManual, got.Source)
}

func TestFromForm_UsesProvidedValues(t *testing.T) {
	date := time.Date(2025, 4, 21, 0, 0, 0, 0, time.UTC)
	duration, total, active := 30, 4, 0

	got := FromForm(ManualInput{
		Title:              "  Q1 Planning Session ",
		Date:               &date,
		DurationMinutes:    &duration,
		MeetingType:        "sprint-planning",
		FunctionalCategory: "planning-strategy",
		TotalParticipants:  &total,
		ActiveParticipants: &active,
		HadAgenda:          true,
		DecisionsCount:     3,
		ActionItemsCount:   -1,
		FollowUpSent:       true,
		CouldBeAsync:       "maybe",
		Notes:              "ran long",
	}, time.Now())

	assert.Equal(t, "Q1 Planning Session", got.Title)
	assert.Equal(t, date, got.Date)
	assert.Equal(t, 30, got.DurationMinutes)
	assert.Equal(t, 4, got.TotalParticipants)
	assert.Equal(t, 0, got.ActiveParticipants)
	assert.Equal(t, 3, got.DecisionsCount)
	assert.Equal(t, 0, got.ActionItemsCount)
	assert.Equal(t, entities.AsyncNo, got.CouldBeAsync)
	assert.Equal(t, "sprint-planning", got.MeetingType)
	assert.Equal(t, "ran long", got.Notes)
}
