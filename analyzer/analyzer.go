package analyzer

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/info"
	"github.com/viant/ruleinspect/inspector/python"
	"github.com/viant/ruleinspect/report"
)

// Analyzer classifies class declarations of rule files and reports their facts
type Analyzer struct {
	config    *info.Config
	fs        afs.Service
	inspector *python.Inspector
	emitter   graph.Emitter
	match     MatcherFn
	logger    logrus.FieldLogger
}

// New creates an analyzer; by default it writes the text report to stdout
func New(options ...Option) *Analyzer {
	a := &Analyzer{
		config: info.DefaultConfig(),
		match:  PythonFiles,
		logger: logrus.StandardLogger(),
	}
	for _, option := range options {
		option(a)
	}
	if a.fs == nil {
		a.fs = afs.New()
	}
	a.inspector = python.NewInspector(a.fs)
	if a.emitter == nil {
		a.emitter = report.NewText(os.Stdout, a.config.Markers, a.config.ShowFile)
	}
	return a
}

// AnalyzeFile reads, parses and reports a single rule file
func (a *Analyzer) AnalyzeFile(ctx context.Context, URL string) (*graph.File, error) {
	return a.analyzeFile(ctx, URL, URL)
}

func (a *Analyzer) analyzeFile(ctx context.Context, URL, path string) (*graph.File, error) {
	logger := a.logger.WithField("file", path)
	logger.Debug("inspecting file")
	source, err := a.inspector.InspectFile(ctx, URL)
	if err != nil {
		return nil, err
	}
	file, err := a.report(source.Module, source.Source, path)
	if err != nil {
		return file, err
	}
	logger.WithField("classes", len(file.Classes)).Debug("inspected file")
	return file, nil
}

// AnalyzeSource parses and reports source code, path is used for reporting only
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, source []byte) (*graph.File, error) {
	module, err := a.inspector.InspectSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return a.report(module, source, path)
}

func (a *Analyzer) report(module *python.Module, source []byte, path string) (*graph.File, error) {
	file := &graph.File{Path: path, Hash: graph.Hash(source)}
	if err := a.emitter.BeginFile(file); err != nil {
		return nil, err
	}
	v := &visitor{emitter: a.emitter, file: file}
	if err := v.visitStatements(module.Body, nil); err != nil {
		a.logger.WithField("file", path).WithError(err).Debug("inspection aborted")
		return file, err
	}
	if err := a.emitter.EndFile(file); err != nil {
		return file, err
	}
	return file, nil
}
