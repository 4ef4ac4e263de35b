package entities

// Key issue tags attached to rows of a batch
const (
	IssueNoAgenda         = "No Agenda"
	IssueNoFollowUp       = "No Follow-up"
	IssueLowParticipation = "Low Participation"
	IssueNoDecisions      = "No Decisions"
	IssueCouldBeAsync     = "Could Be Async"
)

// ScoredMeeting is one row of a batch analysis
type ScoredMeeting struct {
	Title              string           `json:"title"`
	DurationMinutes    int              `json:"duration"`
	TotalParticipants  int              `json:"total_participants"`
	ActiveParticipants int              `json:"active_participants"`
	ParticipationRatio float64          `json:"participation_ratio"`
	DecisionsCount     int              `json:"decisions_count"`
	HadAgenda          bool             `json:"had_agenda"`
	FollowUpSent       bool             `json:"follow_up_sent"`
	CouldBeAsync       AsyncSuitability `json:"could_be_async"`
	Score              int              `json:"score"`
	Classification     Classification   `json:"classification"`
	KeyIssues          []string         `json:"key_issues"`
}

// Summary aggregates a batch of scored meetings
type Summary struct {
	AverageScore              float64  `json:"average_score"`
	AverageParticipationRatio float64  `json:"average_participation_ratio"`
	AgendaPercentage          float64  `json:"agenda_percentage"`
	FollowUpPercentage        float64  `json:"follow_up_percentage"`
	AverageDecisions          float64  `json:"average_decisions"`
	CouldBeAsyncCount         int      `json:"could_be_async_count"`
	TimeWastedPercentage      float64  `json:"time_wasted_percentage"`
	TopRecommendations        []string `json:"top_recommendations"`
}

// ClassificationBucket is the chart view of one classification: how many
// meetings fell into it and how many minutes they are estimated to waste.
type ClassificationBucket struct {
	Classification Classification `json:"classification"`
	Meetings       int            `json:"meetings"`
	WastedMinutes  float64        `json:"wasted_minutes"`
}

// BatchResult is the outcome of analyzing a CSV of meetings
type BatchResult struct {
	ID              string                 `json:"id,omitempty"`
	Meetings        []ScoredMeeting        `json:"meetings"`
	Summary         Summary                `json:"summary"`
	Classifications []ClassificationBucket `json:"classifications"`
	Skipped         int                    `json:"skipped"`
}
