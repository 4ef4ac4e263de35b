package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

// CSV column names recognised by the tabular path
const (
	ColumnTitle          = "Meeting_Title"
	ColumnDuration       = "Duration_Minutes"
	ColumnParticipants   = "Participants"
	ColumnActiveSpeakers = "Actual_Speakers"
	ColumnDecisionMade   = "Decision_Made"
	ColumnAgenda         = "Agenda_Provided"
	ColumnFollowUp       = "Follow_Up_Sent"
	ColumnCouldBeAsync   = "Could_Be_Async"
)

// Defaults applied when a field is missing or cannot be parsed
const (
	DefaultDurationMinutes    = 60
	DefaultTotalParticipants  = 5
	DefaultActiveParticipants = 3
)

// FromRow converts one CSV row into a tabular meeting record. It reports
// false when the row lacks a title or a duration; such rows are dropped.
func FromRow(row Row) (entities.MeetingRecord, bool) {
	title := row[ColumnTitle]
	duration := row[ColumnDuration]
	if title == "" || duration == "" {
		return entities.MeetingRecord{}, false
	}

	decisions := 0
	if isYes(row[ColumnDecisionMade]) {
		decisions = 1
	}

	return entities.MeetingRecord{
		Title:              title,
		DurationMinutes:    ParseDuration(duration),
		TotalParticipants:  ParseCount(row[ColumnParticipants]),
		ActiveParticipants: ParseCount(row[ColumnActiveSpeakers]),
		DecisionsCount:     decisions,
		HadAgenda:          isYes(row[ColumnAgenda]),
		FollowUpSent:       isYes(row[ColumnFollowUp]),
		CouldBeAsync:       ParseTabularAsync(row[ColumnCouldBeAsync]),
		Source:             entities.SourceTabular,
	}, true
}

// Records normalizes every row of a table, returning the kept records in
// input order and the number of rows dropped.
func Records(t *Table) ([]entities.MeetingRecord, int) {
	records := make([]entities.MeetingRecord, 0, len(t.Rows))
	skipped := 0
	for _, row := range t.Rows {
		r, ok := FromRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped
}

// ManualInput is a meeting as entered through the form. Nil pointers take
// the form defaults.
type ManualInput struct {
	Title              string
	Date               *time.Time
	DurationMinutes    *int
	MeetingType        string
	FunctionalCategory string
	TotalParticipants  *int
	ActiveParticipants *int
	HadAgenda          bool
	DecisionsCount     int
	ActionItemsCount   int
	FollowUpSent       bool
	CouldBeAsync       string
	Notes              string
}

// FromForm converts a manual form submission into a meeting record. today
// is used when no date was entered.
func FromForm(in ManualInput, today time.Time) entities.MeetingRecord {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = entities.UntitledMeeting
	}

	date := today
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	duration := DefaultDurationMinutes
	if in.DurationMinutes != nil && *in.DurationMinutes >= 1 {
		duration = *in.DurationMinutes
	}

	return entities.MeetingRecord{
		Title:              title,
		Date:               date,
		DurationMinutes:    duration,
		TotalParticipants:  nonNegative(in.TotalParticipants, DefaultTotalParticipants),
		ActiveParticipants: nonNegative(in.ActiveParticipants, DefaultActiveParticipants),
		DecisionsCount:     max(in.DecisionsCount, 0),
		ActionItemsCount:   max(in.ActionItemsCount, 0),
		HadAgenda:          in.HadAgenda,
		FollowUpSent:       in.FollowUpSent,
		CouldBeAsync:       ParseManualAsync(in.CouldBeAsync),
		MeetingType:        strings.TrimSpace(in.MeetingType),
		FunctionalCategory: strings.TrimSpace(in.FunctionalCategory),
		Notes:              in.Notes,
		Source:             entities.SourceManual,
	}
}

// ParseDuration reads a duration in minutes, falling back to 60 when the
// value is missing, unparseable or below one minute.
func ParseDuration(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 1 {
		return DefaultDurationMinutes
	}
	return n
}

// ParseCount reads a participant count, falling back to 0
func ParseCount(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// ParseTabularAsync collapses a CSV value onto yes/no
func ParseTabularAsync(s string) entities.AsyncSuitability {
	if isYes(s) {
		return entities.AsyncYes
	}
	return entities.AsyncNo
}

// ParseManualAsync accepts the full yes/partially/no domain; anything else reads as no
func ParseManualAsync(s string) entities.AsyncSuitability {
	switch entities.AsyncSuitability(strings.ToLower(strings.TrimSpace(s))) {
	case entities.AsyncYes:
		return entities.AsyncYes
	case entities.AsyncPartially:
		return entities.AsyncPartially
	default:
		return entities.AsyncNo
	}
}

func isYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// leadingInt parses an optional sign followed by the leading run of digits,
// so "45 min" reads as 45.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func nonNegative(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return max(*v, 0)
}
