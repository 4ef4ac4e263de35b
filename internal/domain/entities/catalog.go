package entities

// Option is a selectable form value and its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MeetingTypes are the meeting types offered by the manual entry form
var MeetingTypes = []Option{
	{Value: "sprint-planning", Label: "Sprint Planning"},
	{Value: "cross-team-sync", Label: "Cross-Team Sync"},
	{Value: "budget-review", Label: "Budget Review"},
	{Value: "leadership-roundtable", Label: "Leadership Roundtable"},
	{Value: "security-briefing", Label: "Security Briefing"},
	{Value: "weekly-standup", Label: "Weekly Standup"},
	{Value: "qa-review", Label: "QA Review"},
	{Value: "other", Label: "Other"},
}

// FunctionalCategories are the functional categories offered by the manual entry form
var FunctionalCategories = []Option{
	{Value: "planning-strategy", Label: "Planning & Strategy"},
	{Value: "information-exchange", Label: "Information Exchange"},
	{Value: "review-feedback", Label: "Review & Feedback"},
	{Value: "decision-making", Label: "Decision Making"},
	{Value: "status-updates", Label: "Status Updates"},
	{Value: "analysis", Label: "Analysis"},
}

// MeetingTypeLabel returns the display label for a meeting type slug.
// Unknown values are returned unchanged; an empty value reads as "Meeting".
func MeetingTypeLabel(value string) string {
	return lookupLabel(MeetingTypes, value, "Meeting")
}

// FunctionalCategoryLabel returns the display label for a functional category slug
func FunctionalCategoryLabel(value string) string {
	return lookupLabel(FunctionalCategories, value, "")
}

func lookupLabel(options []Option, value, fallback string) string {
	if value == "" {
		return fallback
	}
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
