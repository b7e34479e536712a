package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/ruleinspect/analyzer"
	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/info"
	"github.com/viant/ruleinspect/inspector/repository"
	"github.com/viant/ruleinspect/report"
)

type options struct {
	configURL string
	format    string
	logLevel  string
	recursive bool
	showFile  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ruleinspect [path]",
		Short: "Summarize enumerations and variables declared in a rule file",
		Long: `ruleinspect parses a tax/benefit rule source file and prints, for every class
declaration, its Enum members or its Variable title and formula presence.

Examples:
  ruleinspect                                   # inspect the default rule file
  ruleinspect variables/人口.py                  # inspect one file
  ruleinspect -r --format yaml variables/       # inspect every rule file below a folder`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.configURL, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Inspect every python file below a directory")
	flags.BoolVar(&opts.showFile, "show-file", false, "Print a header line per inspected file")
	return cmd
}

func runInspect(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	config, err := loadConfig(ctx, cmd, opts, args)
	if err != nil {
		return err
	}
	logger, err := newLogger(config.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if project, err := repository.New().DetectProject(config.Path); err == nil {
		logger.WithFields(logrus.Fields{
			"project": project.Name,
			"root":    project.RootPath,
			"path":    project.RelativePath,
		}).Info("detected project")
	}

	emitter, err := newEmitter(config, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	inspector := analyzer.New(
		analyzer.WithConfig(config),
		analyzer.WithEmitter(emitter),
		analyzer.WithLogger(logger),
	)
	if config.Recursive {
		_, err = inspector.AnalyzeDir(ctx, config.Path)
		return err
	}
	_, err = inspector.AnalyzeFile(ctx, config.Path)
	return err
}

// loadConfig applies defaults, then the config file, then explicit flags and the path argument
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *options, args []string) (*info.Config, error) {
	config := info.DefaultConfig()
	if opts.configURL != "" {
		loaded, err := info.LoadConfig(ctx, nil, opts.configURL)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		config.Format = opts.format
	}
	if flags.Changed("log-level") {
		config.LogLevel = opts.logLevel
	}
	if flags.Changed("recursive") {
		config.Recursive = opts.recursive
	}
	if flags.Changed("show-file") {
		config.ShowFile = opts.showFile
	}
	if len(args) > 0 {
		config.Path = args[0]
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level == "" {
		level = "warn"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(parsed)
	return logger, nil
}

func newEmitter(config *info.Config, out io.Writer) (graph.Emitter, error) {
	switch config.Format {
	case info.FormatYAML:
		return report.NewYAML(out), nil
	case info.FormatText:
		return report.NewText(out, config.Markers, config.ShowFile), nil
	}
	return nil, fmt.Errorf("unsupported format: %q", config.Format)
}
