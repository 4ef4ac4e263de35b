package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/ingest"
)

const (
	analyzeUseConstant         = "analyze"
	analyzeShortDescription    = "Score a single meeting"
	analyzeLongDescription     = "analyze scores one meeting described by flags. Omitted fields take the form defaults."
	analyzeTitleFlagName       = "title"
	analyzeDateFlagName        = "date"
	analyzeDurationFlagName    = "duration"
	analyzeMeetingTypeFlagName = "meeting-type"
	analyzeCategoryFlagName    = "category"
	analyzeTotalFlagName       = "total"
	analyzeActiveFlagName      = "active"
	analyzeAgendaFlagName      = "agenda"
	analyzeDecisionsFlagName   = "decisions"
	analyzeActionItemsFlagName = "action-items"
	analyzeFollowUpFlagName    = "follow-up"
	analyzeAsyncFlagName       = "async"
	analyzeNotesFlagName       = "notes"
	analyzeInvalidAsyncMessage = "invalid --async value %q: expected yes, partially or no"
	analyzeInvalidDateMessage  = "invalid --date value %q: expected YYYY-MM-DD"
)

// AnalyzeCommandBuilder assembles the analyze command
type AnalyzeCommandBuilder struct {
	LoggerProvider LoggerProvider
	Clock          func() time.Time
}

// Build constructs the analyze command
func (builder *AnalyzeCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   analyzeUseConstant,
		Short: analyzeShortDescription,
		Long:  analyzeLongDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	flags := command.Flags()
	flags.String(analyzeTitleFlagName, "", "Meeting title")
	flags.String(analyzeDateFlagName, "", "Meeting date (YYYY-MM-DD, defaults to today)")
	flags.Int(analyzeDurationFlagName, ingest.DefaultDurationMinutes, "Duration in minutes")
	flags.String(analyzeMeetingTypeFlagName, "", "Meeting type slug")
	flags.String(analyzeCategoryFlagName, "", "Functional category slug")
	flags.Int(analyzeTotalFlagName, ingest.DefaultTotalParticipants, "Total participants")
	flags.Int(analyzeActiveFlagName, ingest.DefaultActiveParticipants, "Active participants")
	flags.Bool(analyzeAgendaFlagName, false, "An agenda was shared")
	flags.Int(analyzeDecisionsFlagName, 0, "Decisions made")
	flags.Int(analyzeActionItemsFlagName, 0, "Action items assigned")
	flags.Bool(analyzeFollowUpFlagName, false, "A follow-up was sent")
	flags.String(analyzeAsyncFlagName, "no", "Could the meeting be async (yes, partially, no)")
	flags.String(analyzeNotesFlagName, "", "Free-form notes")
	flags.StringP(outputFlagName, outputFlagShorthand, outputFormatJSON, outputFlagDescription)

	return command
}

func (builder *AnalyzeCommandBuilder) run(command *cobra.Command, _ []string) error {
	input, inputError := builder.input(command)
	if inputError != nil {
		return inputError
	}
	output, _ := command.Flags().GetString(outputFlagName)

	clock := builder.Clock
	if clock == nil {
		clock = time.Now
	}
	result := analysis.AnalyzeInput(input, clock())

	resolveLogger(builder.LoggerProvider).Info("meeting analyzed",
		zap.String("title", result.Title),
		zap.Int("score", result.Score),
	)

	return writeResult(command.OutOrStdout(), output, result)
}

func (builder *AnalyzeCommandBuilder) input(command *cobra.Command) (ingest.ManualInput, error) {
	flags := command.Flags()

	var input ingest.ManualInput
	input.Title, _ = flags.GetString(analyzeTitleFlagName)
	input.MeetingType, _ = flags.GetString(analyzeMeetingTypeFlagName)
	input.FunctionalCategory, _ = flags.GetString(analyzeCategoryFlagName)
	input.HadAgenda, _ = flags.GetBool(analyzeAgendaFlagName)
	input.DecisionsCount, _ = flags.GetInt(analyzeDecisionsFlagName)
	input.ActionItemsCount, _ = flags.GetInt(analyzeActionItemsFlagName)
	input.FollowUpSent, _ = flags.GetBool(analyzeFollowUpFlagName)
	input.Notes, _ = flags.GetString(analyzeNotesFlagName)

	async, _ := flags.GetString(analyzeAsyncFlagName)
	switch async {
	case "yes", "partially", "no":
		input.CouldBeAsync = async
	default:
		return ingest.ManualInput{}, fmt.Errorf(analyzeInvalidAsyncMessage, async)
	}

	if flags.Changed(analyzeDateFlagName) {
		raw, _ := flags.GetString(analyzeDateFlagName)
		date, parseError := time.Parse(time.DateOnly, raw)
		if parseError != nil {
			return ingest.ManualInput{}, fmt.Errorf(analyzeInvalidDateMessage, raw)
		}
		input.Date = &date
	}

	input.DurationMinutes = changedInt(command, analyzeDurationFlagName)
	input.TotalParticipants = changedInt(command, analyzeTotalFlagName)
	input.ActiveParticipants = changedInt(command, analyzeActiveFlagName)

	return input, nil
}

// changedInt returns the flag value only when it was set explicitly
func changedInt(command *cobra.Command, name string) *int {
	if !command.Flags().Changed(name) {
		return nil
	}
	value, _ := command.Flags().GetInt(name)
	return &value
}
