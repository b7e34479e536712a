package python

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/viant/afs"
)

// File is a parsed source file
type File struct {
	URL    string
	Source []byte
	Module *Module
}

// Inspector reads and parses python source files
type Inspector struct {
	fs     afs.Service
	parser *Parser
}

// NewInspector creates an inspector, a nil service defaults to afs.New()
func NewInspector(fs afs.Service) *Inspector {
	if fs == nil {
		fs = afs.New()
	}
	return &Inspector{fs: fs, parser: NewParser()}
}

// InspectSource parses python source code from a byte slice
func (i *Inspector) InspectSource(ctx context.Context, src []byte) (*Module, error) {
	return i.parser.Parse(ctx, src)
}

// InspectFile reads a UTF-8 source file and parses it
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*File, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file %s: %w", ErrFileAccess, URL, err)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: file %s is not valid UTF-8", ErrFileAccess, URL)
	}
	module, err := i.parser.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", URL, err)
	}
	return &File{URL: URL, Source: src, Module: module}, nil
}
