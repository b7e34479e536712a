package python

import (
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

var (
	// ErrFileAccess is returned when a source file cannot be read or decoded
	ErrFileAccess = errors.New("file access error")
	// ErrSyntax is matched by every *SyntaxError
	ErrSyntax = errors.New("syntax error")
)

// SyntaxError reports the first location the parser could not accept
type SyntaxError struct {
	Line    int
	Column  int
	Message string
	Text    string
}

func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s: %q", e.Line, e.Column, e.Message, e.Text)
}

// Is makes errors.Is(err, ErrSyntax) succeed
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// newSyntaxError locates the first ERROR or MISSING node in depth first order
func newSyntaxError(root *sitter.Node, source []byte) *SyntaxError {
	node := firstErrorNode(root)
	if node == nil {
		node = root
	}
	point := node.StartPoint()
	result := &SyntaxError{
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Message: "invalid syntax",
	}
	if node.IsMissing() {
		result.Message = "missing " + node.Type()
		return result
	}
	result.Text = snippet(node.Content(source), 40)
	return result
}

// snippet shortens text to at most limit runes
func snippet(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() && !node.IsMissing() {
		return nil
	}
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return node
}
