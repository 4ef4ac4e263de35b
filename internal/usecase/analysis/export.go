package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

// ExportFileName is the download name of an exported batch
const ExportFileName = "meeting-analysis-results.json"

// MarshalExport serializes a batch result as indented JSON
func MarshalExport(result *entities.BatchResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ParseExport reads a document produced by MarshalExport
func ParseExport(data []byte) (*entities.BatchResult, error) {
	var raw struct {
		entities.BatchResult
		Meetings *[]entities.ScoredMeeting `json:"meetings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidExport, err)
	}
	if raw.Meetings == nil {
		return nil, fmt.Errorf("%w: missing meetings", entities.ErrInvalidExport)
	}
	result := raw.BatchResult
	result.Meetings = *raw.Meetings
	return &result, nil
}
