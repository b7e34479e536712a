package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/info"
	"github.com/viant/ruleinspect/report"
)

func TestText(t *testing.T) {
	tests := []struct {
		description string
		markers     info.Markers
		showFile    bool
		expect      string
	}{
		{
			description: "default markers",
			markers:     info.DefaultMarkers(),
			expect:      "-----\n身体障害者手帳等級パターン\nEnum | パターン\n無:無\n-----\n交付\nVariable | 変数\nタイトル：交付年月日\nこの値は計算に基づき処理されます\n",
		},
		{
			description: "custom markers with file header",
			markers:     info.Markers{Separator: "==", Enum: "[enum]", Variable: "[variable]", Title: "title: ", Formula: "(computed)"},
			showFile:    true,
			expect:      "# rules.py\n==\n身体障害者手帳等級パターン\n[enum]\n無:無\n==\n交付\n[variable]\ntitle: 交付年月日\n(computed)\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			emitter := report.NewText(buffer, tc.markers, tc.showFile)
			file := &graph.File{Path: "rules.py"}
			enum := &graph.Class{Name: "身体障害者手帳等級パターン", Kind: graph.KindEnum}
			variable := &graph.Class{Name: "交付", Kind: graph.KindVariable}

			assert.NoError(t, emitter.BeginFile(file))
			assert.NoError(t, emitter.BeginClass(enum))
			assert.NoError(t, emitter.EmitKind(enum))
			assert.NoError(t, emitter.EmitMember(enum, &graph.EnumMember{Name: "無", Value: "無"}))
			assert.NoError(t, emitter.BeginClass(variable))
			assert.NoError(t, emitter.EmitKind(variable))
			assert.NoError(t, emitter.EmitLabel(variable, "交付年月日"))
			assert.NoError(t, emitter.EmitFormula(variable, "formula"))
			assert.NoError(t, emitter.EndFile(file))
			assert.Equal(t, tc.expect, buffer.String())
		})
	}
}

func TestText_NoKindMarker(t *testing.T) {
	buffer := &bytes.Buffer{}
	emitter := report.NewText(buffer, info.DefaultMarkers(), false)
	reform := &graph.Class{Name: "removal", Base: "Reform"}
	assert.NoError(t, emitter.BeginClass(reform))
	assert.NoError(t, emitter.EmitKind(reform))
	assert.Equal(t, "-----\nremoval\n", buffer.String())
}
