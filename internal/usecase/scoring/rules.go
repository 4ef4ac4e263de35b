// Package scoring holds the meeting effectiveness engine: the scorer, the
// recommendation generator and the batch aggregator. Everything here is a
// pure function of its inputs.
package scoring

// Primary metrics, capped at PrimaryCap in total.
const (
	PointsPerDecision     = 10
	MaxDecisionsScore     = 30
	PointsPerActionItem   = 5
	MaxActionItemsScore   = 20
	MaxParticipationScore = 20
	PrimaryCap            = 70
)

// Process metrics, capped at ProcessCap in total.
const (
	AgendaPoints   = 10
	FollowUpPoints = 10

	DurationEfficientPoints   = 10
	DurationNeutralPoints     = 5
	DurationInefficientPoints = 0
	EfficientMaxMinutes       = 30
	EfficientMinDecisions     = 2
	InefficientMinMinutes     = 90

	ProcessCap = 30
)

// Async modifier, applied after the caps.
const (
	AsyncYesPenalty       = -30
	AsyncPartiallyPenalty = -15
)

// Score bounds and classification thresholds (inclusive lower bounds).
const (
	MinScore = 0
	MaxScore = 100

	ExcellentThreshold        = 90
	GoodThreshold             = 70
	NeedsImprovementThreshold = 40
)

// LowParticipationRatio marks both the key issue and the per-meeting recommendation.
const LowParticipationRatio = 0.5

// Per-meeting duration recommendation.
const (
	ShortenMinMinutes   = 60
	ShortenMaxDecisions = 3
	TargetMinutes       = 30
)

// Batch-level recommendation triggers.
const (
	AgendaTarget          = 0.7
	FollowUpTarget        = 0.7
	ParticipationTarget   = 0.6
	AsyncShareLimit       = 0.3
	LowAverageScore       = 60
	MinTopRecommendations = 3
)

// Fraction of a meeting's duration counted as wasted, by score band. The
// summary uses all four tiers.
const (
	WasteConsiderEliminating = 0.8
	WasteNeedsImprovement    = 0.5
	WasteGood                = 0.2
	WasteExcellent           = 0.0
)
