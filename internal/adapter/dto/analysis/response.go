package analysis

import "github.com/johnquangdev/meeting-scorecard/internal/domain/entities"

// AnalysisResponse represents the result of a single-meeting analysis
type AnalysisResponse struct {
	entities.AnalysisResult
	MeetingTypeLabel        string `json:"meeting_type_label"`
	FunctionalCategoryLabel string `json:"functional_category_label,omitempty"`
}

// BatchLinks points at the follow-up endpoints of a batch
type BatchLinks struct {
	Self    string `json:"self"`
	Export  string `json:"export"`
	Publish string `json:"publish"`
}

// BatchResponse represents the result of a CSV import
type BatchResponse struct {
	entities.BatchResult
	TotalMeetings int        `json:"total_meetings"`
	Links         BatchLinks `json:"links"`
}

// PublishResponse represents a published export
type PublishResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// CatalogResponse lists the form choices
type CatalogResponse struct {
	MeetingTypes         []entities.Option `json:"meeting_types"`
	FunctionalCategories []entities.Option `json:"functional_categories"`
	Defaults             FormDefaults      `json:"defaults"`
}

// FormDefaults are the values a blank form starts with
type FormDefaults struct {
	Duration           int    `json:"duration"`
	TotalParticipants  int    `json:"total_participants"`
	ActiveParticipants int    `json:"active_participants"`
	CouldBeAsync       string `json:"could_be_async"`
}
