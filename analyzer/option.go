package analyzer

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/info"
)

type Option func(*Analyzer)

// MatcherFn decides whether a walked entry is inspected (files) or descended into (directories)
type MatcherFn func(fileInfo os.FileInfo) bool

func WithConfig(config *info.Config) Option {
	return func(a *Analyzer) {
		if config == nil {
			return
		}
		a.config = config
		a.match = SkipDirs(config.SkipDirs...)
	}
}

// WithEmitter sets the report emitter
func WithEmitter(emitter graph.Emitter) Option {
	return func(a *Analyzer) {
		a.emitter = emitter
	}
}

func WithFS(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

func WithMatcher(matcher MatcherFn) Option {
	return func(a *Analyzer) {
		a.match = matcher
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// PythonFiles matches python sources and skips hidden and cache directories
func PythonFiles(fileInfo os.FileInfo) bool {
	return SkipDirs("__pycache__")(fileInfo)
}

// SkipDirs returns a python matcher that also skips the named directories
func SkipDirs(names ...string) MatcherFn {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		skip[name] = true
	}
	return func(fileInfo os.FileInfo) bool {
		name := fileInfo.Name()
		if fileInfo.IsDir() {
			return !skip[name] && (len(name) == 0 || name[0] != '.')
		}
		return filepath.Ext(name) == ".py"
	}
}
