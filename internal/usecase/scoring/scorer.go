package scoring

import (
	"math"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

// RuleSet is one named way of turning a meeting record into points. The
// manual and tabular paths collect different fields, so they score
// decisions, action items and duration differently.
type RuleSet struct {
	Name        string
	decisions   func(entities.MeetingRecord) int
	actionItems func(entities.MeetingRecord) int
	duration    func(entities.MeetingRecord) int
}

// ManualRules scores meetings entered through the form.
var ManualRules = RuleSet{
	Name: "manual",
	decisions: func(r entities.MeetingRecord) int {
		return min(r.DecisionsCount, MaxDecisionsScore/PointsPerDecision) * PointsPerDecision
	},
	actionItems: func(r entities.MeetingRecord) int {
		return min(r.ActionItemsCount, MaxActionItemsScore/PointsPerActionItem) * PointsPerActionItem
	},
	duration: func(r entities.MeetingRecord) int {
		switch {
		case r.DurationMinutes <= EfficientMaxMinutes && r.DecisionsCount >= EfficientMinDecisions:
			return DurationEfficientPoints
		case r.DurationMinutes >= InefficientMinMinutes && r.DecisionsCount < EfficientMinDecisions:
			return DurationInefficientPoints
		default:
			return DurationNeutralPoints
		}
	},
}

// TabularRules scores rows imported from CSV. The source only says whether
// any decision was made and carries no action items, and no duration
// heuristic is applied.
var TabularRules = RuleSet{
	Name: "tabular",
	decisions: func(r entities.MeetingRecord) int {
		if r.DecisionsCount > 0 {
			return MaxDecisionsScore
		}
		return 0
	},
	actionItems: func(entities.MeetingRecord) int { return 0 },
	duration:    func(entities.MeetingRecord) int { return DurationNeutralPoints },
}

// RulesFor picks the rule set matching the record's source
func RulesFor(source entities.RecordSource) RuleSet {
	if source == entities.SourceTabular {
		return TabularRules
	}
	return ManualRules
}

// Score computes the breakdown using the rule set for the record's source
func Score(r entities.MeetingRecord) entities.ScoreBreakdown {
	return RulesFor(r.Source).Score(r)
}

// Score computes the full breakdown for a record
func (rs RuleSet) Score(r entities.MeetingRecord) entities.ScoreBreakdown {
	b := entities.ScoreBreakdown{
		DecisionsScore:     rs.decisions(r),
		ActionItemsScore:   rs.actionItems(r),
		ParticipationScore: ParticipationScore(r.ParticipationRatio()),
	}
	b.PrimaryTotal = min(b.DecisionsScore+b.ActionItemsScore+b.ParticipationScore, PrimaryCap)

	if r.HadAgenda {
		b.AgendaScore = AgendaPoints
	}
	if r.FollowUpSent {
		b.FollowUpScore = FollowUpPoints
	}
	b.DurationScore = rs.duration(r)
	b.ProcessTotal = min(b.AgendaScore+b.FollowUpScore+b.DurationScore, ProcessCap)

	b.AsyncPenalty = AsyncPenalty(r.CouldBeAsync)
	b.Total = Clamp(b.PrimaryTotal + b.ProcessTotal + b.AsyncPenalty)
	b.Classification = Classify(b.Total)
	return b
}

// ParticipationScore converts a participation ratio into 0..20 points.
// Ratios above 1 (more speakers than attendees) score as full participation.
func ParticipationScore(ratio float64) int {
	if ratio <= 0 {
		return 0
	}
	return int(math.Round(math.Min(ratio, 1) * MaxParticipationScore))
}

// AsyncPenalty returns the deduction for a meeting that could have been async
func AsyncPenalty(a entities.AsyncSuitability) int {
	switch a {
	case entities.AsyncYes:
		return AsyncYesPenalty
	case entities.AsyncPartially:
		return AsyncPartiallyPenalty
	default:
		return 0
	}
}

// Clamp bounds a raw score to [MinScore, MaxScore]
func Clamp(score int) int {
	return max(MinScore, min(MaxScore, score))
}

// Classify maps a total score onto its classification
func Classify(total int) entities.Classification {
	switch {
	case total >= ExcellentThreshold:
		return entities.ClassificationExcellent
	case total >= GoodThreshold:
		return entities.ClassificationGood
	case total >= NeedsImprovementThreshold:
		return entities.ClassificationNeedsImprovement
	default:
		return entities.ClassificationConsiderEliminating
	}
}

// KeyIssues lists the scoring deficiencies of a record, in a fixed order
func KeyIssues(r entities.MeetingRecord) []string {
	issues := make([]string, 0, 5)
	if !r.HadAgenda {
		issues = append(issues, entities.IssueNoAgenda)
	}
	if !r.FollowUpSent {
		issues = append(issues, entities.IssueNoFollowUp)
	}
	if r.ParticipationRatio() < LowParticipationRatio {
		issues = append(issues, entities.IssueLowParticipation)
	}
	if r.DecisionsCount == 0 {
		issues = append(issues, entities.IssueNoDecisions)
	}
	if r.CouldBeAsync == entities.AsyncYes {
		issues = append(issues, entities.IssueCouldBeAsync)
	}
	return issues
}

// ScoreRow scores a tabular record and packages it as a batch row
func ScoreRow(r entities.MeetingRecord) entities.ScoredMeeting {
	b := Score(r)
	return entities.ScoredMeeting{
		Title:              r.Title,
		DurationMinutes:    r.DurationMinutes,
		TotalParticipants:  r.TotalParticipants,
		ActiveParticipants: r.ActiveParticipants,
		ParticipationRatio: r.ParticipationRatio(),
		DecisionsCount:     r.DecisionsCount,
		HadAgenda:          r.HadAgenda,
		FollowUpSent:       r.FollowUpSent,
		CouldBeAsync:       r.CouldBeAsync,
		Score:              b.Total,
		Classification:     b.Classification,
		KeyIssues:          KeyIssues(r),
	}
}
