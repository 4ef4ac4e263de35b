package scoring

import (
	"fmt"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

// Recommend builds the per-meeting recommendations for a manually entered
// meeting. Conditions are checked in a fixed order and each one that holds
// adds exactly one recommendation; none suppresses another.
func Recommend(r entities.MeetingRecord, _ entities.ScoreBreakdown) []entities.Recommendation {
	recs := make([]entities.Recommendation, 0, 5)

	if !r.HadAgenda {
		recs = append(recs, entities.Recommendation{
			Title:       "Implement Mandatory Agendas",
			Description: "Require agendas for all meetings to improve focus and productivity",
			Category:    entities.CategoryProcessImprovement,
			Impact:      entities.ImpactMedium,
		})
	}

	if r.CouldBeAsync == entities.AsyncYes {
		recs = append(recs, entities.Recommendation{
			Title:       fmt.Sprintf("Convert %s to Async Updates", entities.MeetingTypeLabel(r.MeetingType)),
			Description: fmt.Sprintf("Replace this meeting with async updates to save %d minutes per occurrence", r.DurationMinutes),
			Category:    entities.CategoryFormatChange,
			Impact:      entities.ImpactHigh,
		})
	}

	if r.ParticipationRatio() < LowParticipationRatio {
		recs = append(recs, entities.Recommendation{
			Title: "Reduce Participant Count",
			Description: fmt.Sprintf("Only %d of %d participants were active. Consider reducing attendance.",
				r.ActiveParticipants, r.TotalParticipants),
			Category: entities.CategoryAttendanceOptimization,
			Impact:   entities.ImpactMedium,
		})
	}

	if r.DurationMinutes > ShortenMinMinutes && r.DecisionsCount < ShortenMaxDecisions {
		recs = append(recs, entities.Recommendation{
			Title:       "Shorten Meeting Duration",
			Description: fmt.Sprintf("Reduce meeting time from %d to %d minutes with a focused agenda", r.DurationMinutes, TargetMinutes),
			Category:    entities.CategoryDurationChange,
			Impact:      entities.ImpactMedium,
		})
	}

	if !r.FollowUpSent {
		recs = append(recs, entities.Recommendation{
			Title:       "Implement Follow-up Summaries",
			Description: "Send follow-up summaries with action items after each meeting",
			Category:    entities.CategoryProcessImprovement,
			Impact:      entities.ImpactMedium,
		})
	}

	return recs
}
