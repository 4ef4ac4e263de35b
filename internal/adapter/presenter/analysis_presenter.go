package presenter

import (
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-scorecard/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/ingest"
)

// ToManualInput converts an AnalyzeMeetingRequest DTO to the use case input
func ToManualInput(req *analysis.AnalyzeMeetingRequest) (ingest.ManualInput, error) {
	input := ingest.ManualInput{
		Title:              req.Title,
		DurationMinutes:    req.Duration,
		MeetingType:        req.MeetingType,
		FunctionalCategory: req.FunctionalCategory,
		TotalParticipants:  req.TotalParticipants,
		ActiveParticipants: req.ActiveParticipants,
		HadAgenda:          req.HadAgenda,
		DecisionsCount:     req.DecisionsCount,
		ActionItemsCount:   req.ActionItemsCount,
		FollowUpSent:       req.FollowUpSent,
		CouldBeAsync:       req.CouldBeAsync,
		Notes:              req.Notes,
	}

	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return ingest.ManualInput{}, fmt.Errorf("invalid date %q: %w", req.Date, err)
		}
		input.Date = &date
	}

	return input, nil
}

// ToAnalysisResponse converts an AnalysisResult entity to AnalysisResponse DTO
func ToAnalysisResponse(result *entities.AnalysisResult, req *analysis.AnalyzeMeetingRequest) *analysis.AnalysisResponse {
	if result == nil {
		return nil
	}

	response := &analysis.AnalysisResponse{AnalysisResult: *result}
	if req != nil {
		response.MeetingTypeLabel = entities.MeetingTypeLabel(req.MeetingType)
		response.FunctionalCategoryLabel = entities.FunctionalCategoryLabel(req.FunctionalCategory)
	} else {
		response.MeetingTypeLabel = entities.MeetingTypeLabel("")
	}
	return response
}

// ToBatchResponse converts a BatchResult entity to BatchResponse DTO
func ToBatchResponse(result *entities.BatchResult, basePath string) *analysis.BatchResponse {
	if result == nil {
		return nil
	}

	self := fmt.Sprintf("%s/imports/%s", basePath, result.ID)
	return &analysis.BatchResponse{
		BatchResult:   *result,
		TotalMeetings: len(result.Meetings),
		Links: analysis.BatchLinks{
			Self:    self,
			Export:  self + "/export",
			Publish: self + "/publish",
		},
	}
}

// ToPublishResponse builds the PublishResponse DTO
func ToPublishResponse(id, url, fileName string) *analysis.PublishResponse {
	return &analysis.PublishResponse{
		ID:       id,
		URL:      url,
		FileName: fileName,
	}
}

// ToCatalogResponse lists the form choices and defaults
func ToCatalogResponse() *analysis.CatalogResponse {
	return &analysis.CatalogResponse{
		MeetingTypes:         entities.MeetingTypes,
		FunctionalCategories: entities.FunctionalCategories,
		Defaults: analysis.FormDefaults{
			Duration:           ingest.DefaultDurationMinutes,
			TotalParticipants:  ingest.DefaultTotalParticipants,
			ActiveParticipants: ingest.DefaultActiveParticipants,
			CouldBeAsync:       string(entities.AsyncNo),
		},
	}
}
