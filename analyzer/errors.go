package analyzer

import (
	"errors"
	"fmt"

	"github.com/viant/ruleinspect/inspector/python"
)

var (
	// ErrNoBases is returned for a class declared without any base
	ErrNoBases = errors.New("class has no bases")
	// ErrUnsupportedBase is returned when the first base is not a simple name
	ErrUnsupportedBase = errors.New("first base is not a simple name")
	// ErrUnsupportedTarget is returned when an inspected assignment target is not a simple name
	ErrUnsupportedTarget = errors.New("assignment target is not a simple name")
	// ErrNotStringLiteral is returned when a reported value is not a string literal
	ErrNotStringLiteral = errors.New("value is not a string literal")
	// ErrNotAssignment is returned for an Enum body statement that is not a plain assignment
	ErrNotAssignment = errors.New("enum body statement is not an assignment")
)

// ClassError locates a classification failure
type ClassError struct {
	Class  string
	Line   int
	Column int
	Err    error
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("class %s (line %d, column %d): %v", e.Class, e.Line, e.Column, e.Err)
}

func (e *ClassError) Unwrap() error {
	return e.Err
}

func newClassError(class *python.ClassDef, node python.Node, err error) *ClassError {
	position := node.Pos()
	return &ClassError{Class: class.Name, Line: position.Line, Column: position.Column, Err: err}
}
