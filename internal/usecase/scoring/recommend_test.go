package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

func titles(recs []entities.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommend_KeepsRuleOrder(t *testing.T) {
	r := entities.MeetingRecord{
		DurationMinutes:    60,
		TotalParticipants:  10,
		ActiveParticipants: 3,
		DecisionsCount:     1,
		CouldBeAsync:       entities.AsyncNo,
	}

	got := Recommend(r, Score(r))

	assert.Equal(t, []string{
		"Implement Mandatory Agendas",
		"Reduce Participant Count",
		"Implement Follow-up Summaries",
	}, titles(got))
	assert.Equal(t, "Only 3 of 10 participants were active. Consider reducing attendance.", got[1].Description)
}

func TestRecommend_AllConditions(t *testing.T) {
	r := entities.MeetingRecord{
		DurationMinutes:    90,
		TotalParticipants:  8,
		ActiveParticipants: 2,
		DecisionsCount:     0,
		CouldBeAsync:       entities.AsyncYes,
		MeetingType:        "weekly-standup",
	}

	got := Recommend(r, Score(r))

	require.Len(t, got, 5)
	assert.Equal(t, []string{
		"Implement Mandatory Agendas",
		"Convert Weekly Standup to Async Updates",
		"Reduce Participant Count",
		"Shorten Meeting Duration",
		"Implement Follow-up Summaries",
	}, titles(got))
	assert.Equal(t, entities.CategoryFormatChange, got[1].Category)
	assert.Equal(t, entities.ImpactHigh, got[1].Impact)
	assert.Equal(t, "Replace this meeting with async updates to save 90 minutes per occurrence", got[1].Description)
	assert.Equal(t, "Reduce meeting time from 90 to 30 minutes with a focused agenda", got[3].Description)
	assert.Equal(t, entities.CategoryDurationChange, got[3].Category)
}

func TestRecommend_NoneForHealthyMeeting(t *testing.T) {
	r := entities.MeetingRecord{
		DurationMinutes:    90,
		TotalParticipants:  4,
		ActiveParticipants: 4,
		DecisionsCount:     3,
		HadAgenda:          true,
		FollowUpSent:       true,
		CouldBeAsync:       entities.AsyncPartially,
	}

	got := Recommend(r, Score(r))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecommend_AsyncTitleUsesMeetingTypeLabel(t *testing.T) {
	tests := []struct {
		meetingType string
		want        string
	}{
		{"sprint-planning", "Convert Sprint Planning to Async Updates"},
		{"offsite", "Convert offsite to Async Updates"},
		{"", "Convert Meeting to Async Updates"},
	}
	for _, tt := range tests {
		r := entities.MeetingRecord{
			TotalParticipants:  1,
			ActiveParticipants: 1,
			HadAgenda:          true,
			FollowUpSent:       true,
			CouldBeAsync:       entities.AsyncYes,
			MeetingType:        tt.meetingType,
		}
		got := Recommend(r, Score(r))
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].Title)
	}
}
