package analyzer

import (
	"fmt"

	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/python"
)

const (
	// EnumBase classifies a class as an enumeration
	EnumBase = "Enum"
	// VariableBase classifies a class as a variable
	VariableBase = "Variable"
	// OrderSentinel is the enum member declaring display order, it is never reported
	OrderSentinel = "__order__"
	// LabelField holds a variable title
	LabelField = "label"
)

// visitor walks statements depth first, reporting every class declaration it meets
type visitor struct {
	emitter graph.Emitter
	file    *graph.File
}

func (v *visitor) visitStatements(stmts []python.Stmt, parent *graph.Class) error {
	for _, stmt := range stmts {
		if err := v.visit(stmt, parent); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) visit(stmt python.Stmt, parent *graph.Class) error {
	switch s := stmt.(type) {
	case *python.ClassDef:
		class, err := v.visitClass(s, parent)
		if err != nil {
			return err
		}
		return v.visitStatements(s.Body, class)
	case *python.FunctionDef:
		return v.visitStatements(s.Body, parent)
	case *python.Compound:
		for _, block := range s.Blocks {
			if err := v.visitStatements(block, parent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *visitor) visitClass(s *python.ClassDef, parent *graph.Class) (*graph.Class, error) {
	position := s.Pos()
	class := &graph.Class{
		Name:      s.Name,
		Decorated: s.Decorated,
		Location:  &graph.Location{Line: position.Line, Column: position.Column, Start: position.Start, End: position.End},
	}
	if parent != nil {
		class.Parent = parent.Name
	}
	v.file.AddClass(class)
	if err := v.emitter.BeginClass(class); err != nil {
		return nil, err
	}

	base, err := firstBase(s)
	if err != nil {
		return nil, newClassError(s, s, err)
	}
	class.Base = base
	switch base {
	case EnumBase:
		class.Kind = graph.KindEnum
		if err = v.emitter.EmitKind(class); err != nil {
			return nil, err
		}
		err = v.enumMembers(s, class)
	case VariableBase:
		class.Kind = graph.KindVariable
		if err = v.emitter.EmitKind(class); err != nil {
			return nil, err
		}
		err = v.variableMembers(s, class)
	}
	if err != nil {
		return nil, err
	}
	return class, nil
}

// firstBase classifies by bases[0] only, later bases are ignored
func firstBase(s *python.ClassDef) (string, error) {
	if len(s.Bases) == 0 {
		return "", ErrNoBases
	}
	name, ok := s.Bases[0].(*python.Name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedBase, python.Describe(s.Bases[0]))
	}
	return name.ID, nil
}

func (v *visitor) enumMembers(s *python.ClassDef, class *graph.Class) error {
	for _, stmt := range s.Body {
		assign, ok := stmt.(*python.Assign)
		if !ok {
			return newClassError(s, stmt, fmt.Errorf("%w: %s", ErrNotAssignment, python.StmtKind(stmt)))
		}
		for _, target := range assign.Targets {
			name, err := targetName(target)
			if err != nil {
				return newClassError(s, assign, err)
			}
			if name == OrderSentinel {
				continue
			}
			value, err := stringValue(assign.Value)
			if err != nil {
				return newClassError(s, assign, err)
			}
			member := &graph.EnumMember{Name: name, Value: value}
			class.AddMember(member)
			if err = v.emitter.EmitMember(class, member); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *visitor) variableMembers(s *python.ClassDef, class *graph.Class) error {
	for _, stmt := range s.Body {
		switch member := stmt.(type) {
		case *python.Assign:
			for _, target := range member.Targets {
				name, err := targetName(target)
				if err != nil {
					return newClassError(s, member, err)
				}
				if name != LabelField {
					continue
				}
				label, err := stringValue(member.Value)
				if err != nil {
					return newClassError(s, member, err)
				}
				class.Labels = append(class.Labels, label)
				if err = v.emitter.EmitLabel(class, label); err != nil {
					return err
				}
			}
		case *python.FunctionDef:
			if member.Async {
				continue
			}
			class.Formulas = append(class.Formulas, member.Name)
			if err := v.emitter.EmitFormula(class, member.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func targetName(target python.Expr) (string, error) {
	name, ok := target.(*python.Name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTarget, python.Describe(target))
	}
	return name.ID, nil
}

func stringValue(value python.Expr) (string, error) {
	if literal, ok := value.(*python.Literal); ok {
		if text, ok := literal.StringValue(); ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotStringLiteral, python.Describe(value))
}
