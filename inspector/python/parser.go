package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"
)

// Parser wraps tree-sitter for python sources
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new python parser
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(tspython.GetLanguage())
	return &Parser{parser: parser}
}

// Parse parses source code into a module; any error node yields a *SyntaxError
func (p *Parser) Parse(ctx context.Context, source []byte) (*Module, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, newSyntaxError(root, source)
	}
	conv := &converter{source: source}
	module := conv.module(root)
	if conv.err != nil {
		return nil, conv.err
	}
	return module, nil
}
