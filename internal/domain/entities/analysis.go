package entities

// Classification buckets a total score
type Classification string

const (
	ClassificationExcellent           Classification = "Excellent"
	ClassificationGood                Classification = "Good"
	ClassificationNeedsImprovement    Classification = "Needs Improvement"
	ClassificationConsiderEliminating Classification = "Consider Eliminating"
)

// Classifications lists every bucket from best to worst
var Classifications = []Classification{
	ClassificationExcellent,
	ClassificationGood,
	ClassificationNeedsImprovement,
	ClassificationConsiderEliminating,
}

// ScoreBreakdown is the itemized point allocation for one meeting
type ScoreBreakdown struct {
	DecisionsScore     int            `json:"decisions_score"`
	ActionItemsScore   int            `json:"action_items_score"`
	ParticipationScore int            `json:"participation_score"`
	PrimaryTotal       int            `json:"primary_total"`
	AgendaScore        int            `json:"agenda_score"`
	FollowUpScore      int            `json:"follow_up_score"`
	DurationScore      int            `json:"duration_score"`
	ProcessTotal       int            `json:"process_total"`
	AsyncPenalty       int            `json:"async_penalty"`
	Total              int            `json:"total"`
	Classification     Classification `json:"classification"`
}

// RecommendationCategory groups recommendations by the kind of change they ask for
type RecommendationCategory string

const (
	CategoryProcessImprovement     RecommendationCategory = "Process Improvement"
	CategoryFormatChange           RecommendationCategory = "Format Change"
	CategoryAttendanceOptimization RecommendationCategory = "Attendance Optimization"
	CategoryDurationChange         RecommendationCategory = "Duration Change"
)

// Impact estimates how much a recommendation would help
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Recommendation is one actionable suggestion for a single meeting
type Recommendation struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    RecommendationCategory `json:"category"`
	Impact      Impact                 `json:"impact"`
}

// AnalysisResult is the outcome of analyzing one manually entered meeting
type AnalysisResult struct {
	Title           string           `json:"title"`
	Date            string           `json:"date"`
	Score           int              `json:"score"`
	Classification  Classification   `json:"classification"`
	Metrics         ScoreBreakdown   `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
}
