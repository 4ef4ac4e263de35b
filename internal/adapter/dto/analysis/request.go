package analysis

// AnalyzeMeetingRequest represents the manual meeting form
type AnalyzeMeetingRequest struct {
	Title              string `json:"title" validate:"max=255" example:"Sprint Planning"`
	Date               string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-04-25"`
	Duration           *int   `json:"duration,omitempty" validate:"omitempty,min=1,max=1440" example:"30"`
	MeetingType        string `json:"meeting_type,omitempty" validate:"max=64" example:"sprint-planning"`
	FunctionalCategory string `json:"functional_category,omitempty" validate:"max=64" example:"planning-strategy"`
	TotalParticipants  *int   `json:"total_participants,omitempty" validate:"omitempty,min=0,max=10000" example:"4"`
	ActiveParticipants *int   `json:"active_participants,omitempty" validate:"omitempty,min=0,max=10000" example:"4"`
	HadAgenda          bool   `json:"had_agenda" example:"true"`
	DecisionsCount     int    `json:"decisions_count" validate:"min=0,max=1000" example:"3"`
	ActionItemsCount   int    `json:"action_items_count" validate:"min=0,max=1000" example:"2"`
	FollowUpSent       bool   `json:"follow_up_sent" example:"true"`
	CouldBeAsync       string `json:"could_be_async,omitempty" validate:"omitempty,oneof=yes partially no" example:"no"`
	Notes              string `json:"notes,omitempty" validate:"max=5000"`
}

// ImportURLRequest represents a request to import a CSV from a URL
type ImportURLRequest struct {
	URL string `json:"url" validate:"required,url" example:"https://example.com/meetings.csv"`
}
