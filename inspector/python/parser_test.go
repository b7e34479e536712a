package python_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ruleinspect/inspector/python"
)

func TestParser_Parse(t *testing.T) {
	source := `# Import from openfisca-core the Python objects used to code the legislation
from openfisca_core.variables import Variable


class 年齢(Variable, metaclass=Meta):
    value_type = int  # comment
    label = "人物の年齢"
    a = b = "x"
    note: str = "annotated"
    count += 1

    @decorator
    def formula(対象人物, 対象期間, _parameters):
        return 0

    async def fetch(self):
        pass


@dataclass
class Plain:
    pass

for item in items:
    class InLoop(*bases):
        pass
`
	module, err := python.NewParser().Parse(context.Background(), []byte(source))
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, module.Body, 4) {
		return
	}
	assert.IsType(t, &python.OtherStmt{}, module.Body[0])

	class, ok := module.Body[1].(*python.ClassDef)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "年齢", class.Name)
	assert.Equal(t, 5, class.Line)
	if assert.Len(t, class.Bases, 1) {
		assert.Equal(t, "Variable", class.Bases[0].(*python.Name).ID)
	}
	if !assert.Len(t, class.Body, 7) {
		return
	}

	label := class.Body[1].(*python.Assign)
	assert.Equal(t, "label", label.Targets[0].(*python.Name).ID)
	text, ok := label.Value.(*python.Literal).StringValue()
	assert.True(t, ok)
	assert.Equal(t, "人物の年齢", text)

	chained := class.Body[2].(*python.Assign)
	assert.Len(t, chained.Targets, 2)
	assert.Equal(t, "b", chained.Targets[1].(*python.Name).ID)

	assert.IsType(t, &python.AnnAssign{}, class.Body[3])
	assert.IsType(t, &python.AugAssign{}, class.Body[4])

	formula := class.Body[5].(*python.FunctionDef)
	assert.Equal(t, "formula", formula.Name)
	assert.False(t, formula.Async)

	fetch := class.Body[6].(*python.FunctionDef)
	assert.True(t, fetch.Async)

	plain := module.Body[2].(*python.ClassDef)
	assert.True(t, plain.Decorated)
	assert.Empty(t, plain.Bases)
	assert.IsType(t, &python.Pass{}, plain.Body[0])

	loop, ok := module.Body[3].(*python.Compound)
	if assert.True(t, ok) && assert.Len(t, loop.Blocks, 1) {
		inLoop := loop.Blocks[0][0].(*python.ClassDef)
		assert.Equal(t, "InLoop", inLoop.Name)
		assert.IsType(t, &python.Starred{}, inLoop.Bases[0])
	}
}

func TestParser_Literals(t *testing.T) {
	tests := []struct {
		source string
		kind   python.LiteralKind
		value  string
	}{
		{source: `x = 'a' "b"`, kind: python.StringLiteral, value: "ab"},
		{source: `x = 10`, kind: python.IntegerLiteral, value: "10"},
		{source: `x = 1.5`, kind: python.FloatLiteral, value: "1.5"},
		{source: `x = True`, kind: python.BooleanLiteral, value: "True"},
		{source: `x = None`, kind: python.NoneLiteral, value: "None"},
		{source: `x = b"a"`, kind: python.BytesLiteral, value: "a"},
		{source: `x = "a" f"{b}"`, kind: python.FStringLiteral, value: `"a" f"{b}"`},
	}
	for _, tc := range tests {
		t.Run(tc.source, func(t *testing.T) {
			module, err := python.NewParser().Parse(context.Background(), []byte(tc.source+"\n"))
			if !assert.NoError(t, err) {
				return
			}
			literal, ok := module.Body[0].(*python.Assign).Value.(*python.Literal)
			if !assert.True(t, ok) {
				return
			}
			assert.Equal(t, tc.kind, literal.Kind)
			assert.Equal(t, tc.value, literal.Value)
		})
	}
}

func TestParser_SyntaxError(t *testing.T) {
	tests := []struct {
		description string
		source      string
		line        int
	}{
		{description: "unclosed bases", source: "class A(Enum:\n    x = \"1\"\n", line: 1},
		{description: "mixed bytes", source: "x = 1\ny = b\"a\" \"b\"\n", line: 2},
		{description: "print statement", source: "x = 1\nprint \"x\"\n", line: 2},
		{description: "exec statement", source: "class A(Enum):\n    exec \"x\"\n", line: 2},
		{description: "unknown character name", source: "x = \"\\N{NO SUCH NAME}\"\n", line: 1},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := python.NewParser().Parse(context.Background(), []byte(tc.source))
			assert.True(t, errors.Is(err, python.ErrSyntax), "unexpected error: %v", err)
			var syntaxErr *python.SyntaxError
			if assert.True(t, errors.As(err, &syntaxErr)) {
				assert.Equal(t, tc.line, syntaxErr.Line)
			}
		})
	}
}

func TestInspector_InspectFile(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.py")
	invalid := filepath.Join(dir, "latin1.py")
	assert.NoError(t, os.WriteFile(valid, []byte("class A(Enum):\n    x = \"1\"\n"), 0644))
	assert.NoError(t, os.WriteFile(invalid, []byte("x = \"\xe9\"\n"), 0644))

	inspector := python.NewInspector(nil)
	file, err := inspector.InspectFile(context.Background(), valid)
	if assert.NoError(t, err) {
		assert.Len(t, file.Module.Body, 1)
		assert.NotEmpty(t, file.Source)
	}

	_, err = inspector.InspectFile(context.Background(), invalid)
	assert.True(t, errors.Is(err, python.ErrFileAccess), "unexpected error: %v", err)

	_, err = inspector.InspectFile(context.Background(), filepath.Join(dir, "missing.py"))
	assert.True(t, errors.Is(err, python.ErrFileAccess), "unexpected error: %v", err)
}
