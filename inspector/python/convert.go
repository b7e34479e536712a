package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/text/unicode/norm"
)

// converter maps a tree-sitter python tree onto the typed syntax model
type converter struct {
	source []byte
	err    error
}

func (c *converter) module(root *sitter.Node) *Module {
	return &Module{Body: c.statements(root), Position: c.position(root)}
}

// namedChildren returns named children without comments
func namedChildren(node *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		result = append(result, child)
	}
	return result
}

func (c *converter) position(node *sitter.Node) Position {
	point := node.StartPoint()
	return Position{
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
		Start:  int(node.StartByte()),
		End:    int(node.EndByte()),
	}
}

func (c *converter) text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return node.Content(c.source)
}

// identifier returns the NFKC normalized name, the form the python compiler binds
func (c *converter) identifier(node *sitter.Node) string {
	return norm.NFKC.String(c.text(node))
}

func (c *converter) statements(block *sitter.Node) []Stmt {
	if block == nil {
		return nil
	}
	var result []Stmt
	for _, child := range namedChildren(block) {
		result = append(result, c.statement(child))
	}
	return result
}

func (c *converter) statement(node *sitter.Node) Stmt {
	switch node.Type() {
	case "class_definition":
		return c.classDef(node, false)
	case "function_definition":
		return c.functionDef(node)
	case "decorated_definition":
		definition := node.ChildByFieldName("definition")
		if definition != nil {
			switch definition.Type() {
			case "class_definition":
				return c.classDef(definition, true)
			case "function_definition":
				return c.functionDef(definition)
			}
		}
	case "expression_statement":
		return c.expressionStatement(node)
	case "pass_statement":
		return &Pass{Position: c.position(node)}
	case "print_statement", "exec_statement":
		c.fail(node, "Missing parentheses in call to '"+strings.TrimSuffix(node.Type(), "_statement")+"'")
	}
	if blocks := c.blocks(node); len(blocks) > 0 {
		return &Compound{Kind: node.Type(), Blocks: blocks, Position: c.position(node)}
	}
	return &OtherStmt{Kind: node.Type(), Text: c.text(node), Position: c.position(node)}
}

// blocks collects nested statement blocks in source order (if/elif/else, try/except/finally, ...)
func (c *converter) blocks(node *sitter.Node) [][]Stmt {
	var result [][]Stmt
	for _, child := range namedChildren(node) {
		if child.Type() == "block" {
			result = append(result, c.statements(child))
			continue
		}
		result = append(result, c.blocks(child)...)
	}
	return result
}

func (c *converter) classDef(node *sitter.Node, decorated bool) *ClassDef {
	class := &ClassDef{
		Name:      c.identifier(node.ChildByFieldName("name")),
		Decorated: decorated,
		Position:  c.position(node),
	}
	if superclasses := node.ChildByFieldName("superclasses"); superclasses != nil {
		for _, arg := range namedChildren(superclasses) {
			switch arg.Type() {
			case "keyword_argument", "dictionary_splat":
				continue
			}
			class.Bases = append(class.Bases, c.expression(arg))
		}
	}
	class.Body = c.statements(node.ChildByFieldName("body"))
	return class
}

func (c *converter) functionDef(node *sitter.Node) *FunctionDef {
	fn := &FunctionDef{
		Name:     c.identifier(node.ChildByFieldName("name")),
		Position: c.position(node),
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil && !child.IsNamed() && child.Type() == "async" {
			fn.Async = true
			break
		}
	}
	fn.Body = c.statements(node.ChildByFieldName("body"))
	return fn
}

func (c *converter) expressionStatement(node *sitter.Node) Stmt {
	children := namedChildren(node)
	if len(children) == 1 {
		child := children[0]
		switch child.Type() {
		case "assignment":
			return c.assignment(child)
		case "augmented_assignment":
			return &AugAssign{
				Target:   c.expression(child.ChildByFieldName("left")),
				Operator: c.text(child.ChildByFieldName("operator")),
				Value:    c.expression(child.ChildByFieldName("right")),
				Position: c.position(child),
			}
		}
		return &ExprStmt{Value: c.expression(child), Position: c.position(node)}
	}
	return &ExprStmt{Value: c.tuple(node, children), Position: c.position(node)}
}

func (c *converter) assignment(node *sitter.Node) Stmt {
	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if annotation := node.ChildByFieldName("type"); annotation != nil {
		result := &AnnAssign{
			Target:     c.expression(left),
			Annotation: c.expression(annotation),
			Position:   c.position(node),
		}
		if right != nil {
			result.Value = c.expression(right)
		}
		return result
	}
	assign := &Assign{Targets: []Expr{c.expression(left)}, Position: c.position(node)}
	for right != nil && right.Type() == "assignment" && right.ChildByFieldName("type") == nil {
		assign.Targets = append(assign.Targets, c.expression(right.ChildByFieldName("left")))
		right = right.ChildByFieldName("right")
	}
	assign.Value = c.expression(right)
	return assign
}

func (c *converter) tuple(node *sitter.Node, children []*sitter.Node) *Tuple {
	result := &Tuple{Position: c.position(node)}
	for _, child := range children {
		result.Elts = append(result.Elts, c.expression(child))
	}
	return result
}

func (c *converter) expression(node *sitter.Node) Expr {
	if node == nil {
		return nil
	}
	position := c.position(node)
	switch node.Type() {
	case "identifier", "keyword_identifier":
		return &Name{ID: c.identifier(node), Position: position}
	case "attribute":
		return &Attribute{
			Value:    c.expression(node.ChildByFieldName("object")),
			Attr:     c.identifier(node.ChildByFieldName("attribute")),
			Position: position,
		}
	case "subscript":
		return &Subscript{Value: c.expression(node.ChildByFieldName("value")), Text: c.text(node), Position: position}
	case "call":
		return &Call{Func: c.expression(node.ChildByFieldName("function")), Text: c.text(node), Position: position}
	case "list_splat", "list_splat_pattern":
		var value Expr
		if children := namedChildren(node); len(children) > 0 {
			value = c.expression(children[0])
		}
		return &Starred{Value: value, Position: position}
	case "parenthesized_expression":
		if children := namedChildren(node); len(children) == 1 {
			return c.expression(children[0])
		}
	case "tuple", "expression_list", "pattern_list", "tuple_pattern":
		return c.tuple(node, namedChildren(node))
	case "string":
		kind, value, err := decodeString(c.text(node))
		if err != nil {
			c.fail(node, err.Error())
		}
		return &Literal{Kind: kind, Value: value, Raw: c.text(node), Position: position}
	case "concatenated_string":
		return c.concatenatedString(node)
	case "integer":
		return &Literal{Kind: IntegerLiteral, Value: c.text(node), Raw: c.text(node), Position: position}
	case "float":
		return &Literal{Kind: FloatLiteral, Value: c.text(node), Raw: c.text(node), Position: position}
	case "true", "false":
		return &Literal{Kind: BooleanLiteral, Value: c.text(node), Raw: c.text(node), Position: position}
	case "none":
		return &Literal{Kind: NoneLiteral, Value: c.text(node), Raw: c.text(node), Position: position}
	}
	return &OtherExpr{Kind: node.Type(), Text: c.text(node), Position: position}
}

// concatenatedString folds adjacent string tokens the way the compiler does
func (c *converter) concatenatedString(node *sitter.Node) Expr {
	result := &Literal{Raw: c.text(node), Position: c.position(node)}
	value := ""
	for _, part := range namedChildren(node) {
		kind, decoded, err := decodeString(c.text(part))
		if err != nil {
			c.fail(part, err.Error())
		}
		switch {
		case result.Kind == "":
			result.Kind = kind
		case kind == FStringLiteral || result.Kind == FStringLiteral:
			if (kind == BytesLiteral) != (result.Kind == BytesLiteral) {
				c.fail(node, "cannot mix bytes and nonbytes literals")
			}
			result.Kind = FStringLiteral
		case (kind == BytesLiteral) != (result.Kind == BytesLiteral):
			c.fail(node, "cannot mix bytes and nonbytes literals")
		}
		value += decoded
	}
	result.Value = value
	if result.Kind == FStringLiteral {
		result.Value = result.Raw
	}
	return result
}

func (c *converter) fail(node *sitter.Node, message string) {
	if c.err != nil {
		return
	}
	position := c.position(node)
	c.err = &SyntaxError{Line: position.Line, Column: position.Column, Message: message, Text: c.text(node)}
}
