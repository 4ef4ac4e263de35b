package analysis

import (
	"strings"
	"time"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/ingest"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/scoring"
)

// DateLayout is how analysis dates are rendered ("April 25, 2025")
const DateLayout = "January 2, 2006"

// AnalyzeRecord scores a manually entered meeting and builds its recommendations
func AnalyzeRecord(r entities.MeetingRecord) *entities.AnalysisResult {
	breakdown := scoring.Score(r)
	return &entities.AnalysisResult{
		Title:           r.Title,
		Date:            r.Date.Format(DateLayout),
		Score:           breakdown.Total,
		Classification:  breakdown.Classification,
		Metrics:         breakdown,
		Recommendations: scoring.Recommend(r, breakdown),
	}
}

// AnalyzeTable scores every usable row of a parsed CSV and aggregates the batch
func AnalyzeTable(table *ingest.Table) *entities.BatchResult {
	records, skipped := ingest.Records(table)

	meetings := make([]entities.ScoredMeeting, 0, len(records))
	for _, r := range records {
		meetings = append(meetings, scoring.ScoreRow(r))
	}

	return &entities.BatchResult{
		Meetings:        meetings,
		Summary:         scoring.Summarize(meetings),
		Classifications: scoring.Breakdown(meetings),
		Skipped:         skipped,
	}
}

// AnalyzeText parses CSV text and analyzes it as a batch. Blank text yields
// entities.ErrEmptySource.
func AnalyzeText(text string, quoted bool) (*entities.BatchResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entities.ErrEmptySource
	}
	var opts []ingest.ParseOption
	if quoted {
		opts = append(opts, ingest.WithQuotedFields())
	}
	table, err := ingest.Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	return AnalyzeTable(table), nil
}

// AnalyzeInput normalizes a form submission and analyzes it, using now for a missing date
func AnalyzeInput(in ingest.ManualInput, now time.Time) *entities.AnalysisResult {
	return AnalyzeRecord(ingest.FromForm(in, now))
}
