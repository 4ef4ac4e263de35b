package entities

import "time"

// AsyncSuitability describes whether a meeting could have been replaced by async communication
type AsyncSuitability string

const (
	AsyncYes       AsyncSuitability = "yes"
	AsyncPartially AsyncSuitability = "partially"
	AsyncNo        AsyncSuitability = "no"
)

// RecordSource tells which input path produced a record and therefore which rule set scores it
type RecordSource string

const (
	SourceManual  RecordSource = "manual"
	SourceTabular RecordSource = "tabular"
)

// UntitledMeeting is used when a record arrives without a title
const UntitledMeeting = "Untitled Meeting"

// MeetingRecord is the canonical scoring input. It is built once by the
// normalizer and treated as read-only afterwards.
type MeetingRecord struct {
	Title              string           `json:"title"`
	Date               time.Time        `json:"date,omitzero"`
	DurationMinutes    int              `json:"duration"`
	TotalParticipants  int              `json:"total_participants"`
	ActiveParticipants int              `json:"active_participants"`
	DecisionsCount     int              `json:"decisions_count"`
	ActionItemsCount   int              `json:"action_items_count"`
	HadAgenda          bool             `json:"had_agenda"`
	FollowUpSent       bool             `json:"follow_up_sent"`
	CouldBeAsync       AsyncSuitability `json:"could_be_async"`
	MeetingType        string           `json:"meeting_type,omitempty"`
	FunctionalCategory string           `json:"functional_category,omitempty"`
	Notes              string           `json:"notes,omitempty"`
	Source             RecordSource     `json:"source"`
}

// ParticipationRatio returns active/total participants, or 0 when nobody attended
func (m MeetingRecord) ParticipationRatio() float64 {
	if m.TotalParticipants <= 0 {
		return 0
	}
	return float64(m.ActiveParticipants) / float64(m.TotalParticipants)
}
