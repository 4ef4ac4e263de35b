package scoring

import "github.com/johnquangdev/meeting-scorecard/internal/domain/entities"

// Batch-level recommendation texts, in the order they are checked.
const (
	RecommendAgendas       = "Implement mandatory agendas for all meetings to improve focus and productivity."
	RecommendFollowUps     = "Ensure follow-up summaries with action items are sent after each meeting."
	RecommendFewerAttendee = "Reduce participant count in meetings to include only essential stakeholders."
	RecommendAsync         = "Convert identified meetings to asynchronous formats (documents, emails, or recorded updates)."
	RecommendEliminate     = "Review and potentially eliminate low-scoring meetings to reclaim productive time."
	RecommendReview        = "Implement a regular review process for all recurring meetings to ensure continued value."
)

// Summarize reduces a batch of scored meetings to summary statistics and
// top-level recommendations. An empty batch yields a zeroed summary.
func Summarize(meetings []entities.ScoredMeeting) entities.Summary {
	if len(meetings) == 0 {
		return entities.Summary{TopRecommendations: []string{}}
	}

	var (
		totalScore    int
		totalRatio    float64
		withAgenda    int
		withFollowUp  int
		totalDecision int
		asyncCount    int
		totalMinutes  int
		wastedMinutes float64
	)
	for _, m := range meetings {
		totalScore += m.Score
		totalRatio += m.ParticipationRatio
		if m.HadAgenda {
			withAgenda++
		}
		if m.FollowUpSent {
			withFollowUp++
		}
		totalDecision += m.DecisionsCount
		if m.CouldBeAsync == entities.AsyncYes {
			asyncCount++
		}
		totalMinutes += m.DurationMinutes
		wastedMinutes += float64(m.DurationMinutes) * WastedFraction(m.Score)
	}

	n := float64(len(meetings))
	s := entities.Summary{
		AverageScore:              float64(totalScore) / n,
		AverageParticipationRatio: totalRatio / n,
		AgendaPercentage:          float64(withAgenda) / n,
		FollowUpPercentage:        float64(withFollowUp) / n,
		AverageDecisions:          float64(totalDecision) / n,
		CouldBeAsyncCount:         asyncCount,
	}
	if totalMinutes > 0 {
		s.TimeWastedPercentage = wastedMinutes / float64(totalMinutes)
	}
	s.TopRecommendations = topRecommendations(s, len(meetings))
	return s
}

func topRecommendations(s entities.Summary, count int) []string {
	recs := make([]string, 0, 6)
	if s.AgendaPercentage < AgendaTarget {
		recs = append(recs, RecommendAgendas)
	}
	if s.FollowUpPercentage < FollowUpTarget {
		recs = append(recs, RecommendFollowUps)
	}
	if s.AverageParticipationRatio < ParticipationTarget {
		recs = append(recs, RecommendFewerAttendee)
	}
	if float64(s.CouldBeAsyncCount) > float64(count)*AsyncShareLimit {
		recs = append(recs, RecommendAsync)
	}
	if s.AverageScore < LowAverageScore {
		recs = append(recs, RecommendEliminate)
	}
	if len(recs) < MinTopRecommendations {
		recs = append(recs, RecommendReview)
	}
	return recs
}

// WastedFraction is the share of a meeting's time counted as wasted for its score
func WastedFraction(score int) float64 {
	switch {
	case score < NeedsImprovementThreshold:
		return WasteConsiderEliminating
	case score < GoodThreshold:
		return WasteNeedsImprovement
	case score < ExcellentThreshold:
		return WasteGood
	default:
		return WasteExcellent
	}
}

// chartWastedFraction is the coarser two-tier rule used by the
// per-classification chart view: only meetings below Good count as waste.
func chartWastedFraction(c entities.Classification) float64 {
	switch c {
	case entities.ClassificationNeedsImprovement:
		return WasteNeedsImprovement
	case entities.ClassificationConsiderEliminating:
		return WasteConsiderEliminating
	default:
		return 0
	}
}

// Breakdown counts meetings and estimated wasted minutes per classification,
// always returning one bucket per classification in best-to-worst order.
func Breakdown(meetings []entities.ScoredMeeting) []entities.ClassificationBucket {
	buckets := make([]entities.ClassificationBucket, len(entities.Classifications))
	index := make(map[entities.Classification]int, len(entities.Classifications))
	for i, c := range entities.Classifications {
		buckets[i].Classification = c
		index[c] = i
	}
	for _, m := range meetings {
		i, ok := index[m.Classification]
		if !ok {
			i = index[Classify(m.Score)]
		}
		buckets[i].Meetings++
		buckets[i].WastedMinutes += float64(m.DurationMinutes) * chartWastedFraction(buckets[i].Classification)
	}
	return buckets
}
