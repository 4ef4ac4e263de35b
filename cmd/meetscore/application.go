package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/external/source"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-scorecard/pkg/logger"
)

const (
	applicationName             = "meetscore"
	applicationShortDescription = "Score meetings for effectiveness"
	applicationLongDescription  = "meetscore scores a single meeting or a CSV export of meetings and prints the breakdown, summary and recommendations."
	logLevelFlagName            = "log-level"
	logLevelFlagDescription     = "Log level (debug, info, warn, error)"
	logFormatFlagName           = "log-format"
	logFormatFlagDescription    = "Log format (json or console)"
	defaultLogLevel             = "warn"
	defaultFetchTimeout         = 30 * time.Second
	defaultMaxCSVBytes          = 5 << 20
)

// FetcherFactory builds the fetcher used for URL imports
type FetcherFactory func(timeout time.Duration, maxBytes int64) analysis.Fetcher

// Application wires the meetscore command tree
type Application struct {
	rootCommand    *cobra.Command
	logger         *zap.Logger
	fetcherFactory FetcherFactory
	clock          func() time.Time
}

// NewApplication creates the command tree with production dependencies
func NewApplication() *Application {
	return newApplication(func(timeout time.Duration, maxBytes int64) analysis.Fetcher {
		return source.NewHTTPFetcher(timeout, maxBytes)
	}, time.Now)
}

func newApplication(fetcherFactory FetcherFactory, clock func() time.Time) *Application {
	application := &Application{
		logger:         zap.NewNop(),
		fetcherFactory: fetcherFactory,
		clock:          clock,
	}

	rootCommand := &cobra.Command{
		Use:           applicationName,
		Short:         applicationShortDescription,
		Long:          applicationLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			return application.initializeLogger(command)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = application.logger.Sync()
		},
	}
	rootCommand.PersistentFlags().String(logLevelFlagName, defaultLogLevel, logLevelFlagDescription)
	rootCommand.PersistentFlags().String(logFormatFlagName, logger.FormatConsole, logFormatFlagDescription)

	importBuilder := &ImportCommandBuilder{LoggerProvider: application.Logger, FetcherFactory: fetcherFactory}
	analyzeBuilder := &AnalyzeCommandBuilder{LoggerProvider: application.Logger, Clock: clock}
	rootCommand.AddCommand(importBuilder.Build(), analyzeBuilder.Build())

	application.rootCommand = rootCommand
	return application
}

// Logger returns the logger configured from the persistent flags
func (application *Application) Logger() *zap.Logger {
	return application.logger
}

// Execute runs the command tree with the process arguments
func (application *Application) Execute(ctx context.Context) error {
	return application.rootCommand.ExecuteContext(ctx)
}

func (application *Application) initializeLogger(command *cobra.Command) error {
	level, _ := command.Flags().GetString(logLevelFlagName)
	format, _ := command.Flags().GetString(logFormatFlagName)

	configured, err := logger.New(level, format)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	application.logger = configured
	return nil
}
