package python

import "strings"

// Position locates a node in the source
type Position struct {
	Line   int // 1-based line
	Column int // 1-based byte column
	Start  int // start byte offset
	End    int // end byte offset
}

// Pos returns the node position
func (p Position) Pos() Position {
	return p
}

// Node is implemented by every syntax node
type Node interface {
	Pos() Position
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node
type Expr interface {
	Node
	exprNode()
}

// Module represents a parsed source file
type Module struct {
	Body []Stmt
	Position
}

// ClassDef represents a class declaration
type ClassDef struct {
	Name      string
	Bases     []Expr // positional bases only, keyword arguments are excluded
	Body      []Stmt
	Decorated bool
	Position
}

// FunctionDef represents a function declaration
type FunctionDef struct {
	Name  string
	Async bool
	Body  []Stmt
	Position
}

// Assign represents a plain (possibly chained) assignment, a = b = value
type Assign struct {
	Targets []Expr
	Value   Expr
	Position
}

// AnnAssign represents an annotated assignment, target: annotation = value
type AnnAssign struct {
	Target     Expr
	Annotation Expr
	Value      Expr // nil for a bare annotation
	Position
}

// AugAssign represents an augmented assignment such as a += 1
type AugAssign struct {
	Target   Expr
	Operator string
	Value    Expr
	Position
}

// ExprStmt represents an expression used as a statement (docstrings, calls)
type ExprStmt struct {
	Value Expr
	Position
}

// Pass represents a pass statement
type Pass struct {
	Position
}

// Compound represents if/for/while/try/with/match statements; only nested blocks are kept
type Compound struct {
	Kind   string
	Blocks [][]Stmt
	Position
}

// OtherStmt represents any other simple statement (import, return, ...)
type OtherStmt struct {
	Kind string
	Text string
	Position
}

func (*ClassDef) stmtNode()    {}
func (*FunctionDef) stmtNode() {}
func (*Assign) stmtNode()      {}
func (*AnnAssign) stmtNode()   {}
func (*AugAssign) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Compound) stmtNode()    {}
func (*OtherStmt) stmtNode()   {}

// LiteralKind identifies literal payload type
type LiteralKind string

const (
	StringLiteral  LiteralKind = "string"
	BytesLiteral   LiteralKind = "bytes"
	FStringLiteral LiteralKind = "fstring"
	IntegerLiteral LiteralKind = "integer"
	FloatLiteral   LiteralKind = "float"
	BooleanLiteral LiteralKind = "boolean"
	NoneLiteral    LiteralKind = "none"
)

// Name represents a bare identifier
type Name struct {
	ID string
	Position
}

// Attribute represents value.attr
type Attribute struct {
	Value Expr
	Attr  string
	Position
}

// Subscript represents value[...]
type Subscript struct {
	Value Expr
	Text  string
	Position
}

// Call represents func(...)
type Call struct {
	Func Expr
	Text string
	Position
}

// Starred represents *value
type Starred struct {
	Value Expr
	Position
}

// Tuple represents comma separated expressions or patterns
type Tuple struct {
	Elts []Expr
	Position
}

// Literal represents a constant; Value holds the decoded payload for strings and the source text otherwise
type Literal struct {
	Kind  LiteralKind
	Value string
	Raw   string
	Position
}

// OtherExpr represents any expression not modelled above
type OtherExpr struct {
	Kind string
	Text string
	Position
}

func (*Name) exprNode()      {}
func (*Attribute) exprNode() {}
func (*Subscript) exprNode() {}
func (*Call) exprNode()      {}
func (*Starred) exprNode()   {}
func (*Tuple) exprNode()     {}
func (*Literal) exprNode()   {}
func (*OtherExpr) exprNode() {}

// StringValue returns the string payload, ok is false for any non string literal
func (l *Literal) StringValue() (string, bool) {
	if l.Kind != StringLiteral {
		return "", false
	}
	return l.Value, true
}

// Describe returns a short human readable description of an expression
func Describe(expr Expr) string {
	switch e := expr.(type) {
	case nil:
		return "<missing>"
	case *Name:
		return "name " + e.ID
	case *Attribute:
		return "attribute " + Dotted(e)
	case *Subscript:
		return "subscript " + e.Text
	case *Call:
		return "call " + e.Text
	case *Starred:
		return "starred " + Describe(e.Value)
	case *Tuple:
		parts := make([]string, 0, len(e.Elts))
		for _, elt := range e.Elts {
			parts = append(parts, Describe(elt))
		}
		return "tuple (" + strings.Join(parts, ", ") + ")"
	case *Literal:
		return string(e.Kind) + " literal " + e.Raw
	case *OtherExpr:
		return e.Kind + " " + e.Text
	}
	return "expression"
}

// Dotted renders an attribute chain such as enum.Enum
func Dotted(expr Expr) string {
	switch e := expr.(type) {
	case *Name:
		return e.ID
	case *Attribute:
		return Dotted(e.Value) + "." + e.Attr
	case nil:
		return ""
	}
	return "(" + Describe(expr) + ")"
}

// StmtKind returns the statement kind name
func StmtKind(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ClassDef:
		return "class definition"
	case *FunctionDef:
		return "function definition"
	case *Assign:
		return "assignment"
	case *AnnAssign:
		return "annotated assignment"
	case *AugAssign:
		return "augmented assignment"
	case *ExprStmt:
		return "expression statement"
	case *Pass:
		return "pass statement"
	case *Compound:
		return s.Kind
	case *OtherStmt:
		return s.Kind
	}
	return "statement"
}
