package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
)

const (
	importUseConstant         = "import <path|url>"
	importShortDescription    = "Score every meeting in a CSV file"
	importLongDescription     = "import reads a CSV export from a local path or an http(s) URL, scores each row and prints the batch summary."
	importQuotedFlagName      = "quoted"
	importQuotedDescription   = "Parse quoted fields with embedded commas"
	importTimeoutFlagName     = "timeout"
	importTimeoutDescription  = "Timeout for URL downloads"
	importMaxBytesFlagName    = "max-bytes"
	importMaxBytesDescription = "Maximum CSV size in bytes"
	importEmptySourceMessage  = "no CSV content in %s"
	importTooLargeMessage     = "%s exceeds %d bytes"
)

// LoggerProvider returns the logger configured for the current run
type LoggerProvider func() *zap.Logger

// ImportCommandBuilder assembles the import command
type ImportCommandBuilder struct {
	LoggerProvider LoggerProvider
	FetcherFactory FetcherFactory
}

// Build constructs the import command
func (builder *ImportCommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   importUseConstant,
		Short: importShortDescription,
		Long:  importLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Bool(importQuotedFlagName, false, importQuotedDescription)
	command.Flags().Duration(importTimeoutFlagName, defaultFetchTimeout, importTimeoutDescription)
	command.Flags().Int64(importMaxBytesFlagName, defaultMaxCSVBytes, importMaxBytesDescription)
	command.Flags().StringP(outputFlagName, outputFlagShorthand, outputFormatJSON, outputFlagDescription)

	return command
}

func (builder *ImportCommandBuilder) run(command *cobra.Command, arguments []string) error {
	quoted, _ := command.Flags().GetBool(importQuotedFlagName)
	timeout, _ := command.Flags().GetDuration(importTimeoutFlagName)
	maxBytes, _ := command.Flags().GetInt64(importMaxBytesFlagName)
	output, _ := command.Flags().GetString(outputFlagName)

	logger := resolveLogger(builder.LoggerProvider)
	location := strings.TrimSpace(arguments[0])

	text, readError := builder.read(command, location, timeout, maxBytes)
	if readError != nil {
		return readError
	}
	result, analyzeError := analysis.AnalyzeText(text, quoted)
	if errors.Is(analyzeError, entities.ErrEmptySource) {
		return fmt.Errorf(importEmptySourceMessage, location)
	}
	if analyzeError != nil {
		return fmt.Errorf("parse %s: %w", location, analyzeError)
	}

	logger.Info("batch analyzed",
		zap.String("source", location),
		zap.Int("meetings", len(result.Meetings)),
		zap.Int("skipped", result.Skipped),
	)

	return writeResult(command.OutOrStdout(), output, result)
}

func (builder *ImportCommandBuilder) read(command *cobra.Command, location string, timeout time.Duration, maxBytes int64) (string, error) {
	if isRemote(location) {
		fetcher := builder.FetcherFactory(timeout, maxBytes)
		return fetcher.Fetch(command.Context(), location)
	}

	info, statError := os.Stat(location)
	if statError != nil {
		return "", statError
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", fmt.Errorf(importTooLargeMessage, location, maxBytes)
	}
	contents, readError := os.ReadFile(location)
	if readError != nil {
		return "", readError
	}
	return string(contents), nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	if logger := provider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}
