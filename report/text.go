package report

import (
	"bufio"
	"io"

	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/info"
)

// Text writes the line oriented report, flushing every line as it is emitted
type Text struct {
	writer   *bufio.Writer
	markers  info.Markers
	showFile bool
}

// NewText creates a text emitter
func NewText(w io.Writer, markers info.Markers, showFile bool) *Text {
	return &Text{writer: bufio.NewWriter(w), markers: markers, showFile: showFile}
}

func (t *Text) line(parts ...string) error {
	for _, part := range parts {
		if _, err := t.writer.WriteString(part); err != nil {
			return err
		}
	}
	if err := t.writer.WriteByte('\n'); err != nil {
		return err
	}
	return t.writer.Flush()
}

func (t *Text) BeginFile(file *graph.File) error {
	if !t.showFile {
		return nil
	}
	return t.line("# ", file.Path)
}

func (t *Text) BeginClass(class *graph.Class) error {
	if err := t.line(t.markers.Separator); err != nil {
		return err
	}
	return t.line(class.Name)
}

func (t *Text) EmitKind(class *graph.Class) error {
	switch class.Kind {
	case graph.KindEnum:
		return t.line(t.markers.Enum)
	case graph.KindVariable:
		return t.line(t.markers.Variable)
	}
	return nil
}

func (t *Text) EmitMember(_ *graph.Class, member *graph.EnumMember) error {
	return t.line(member.Name, ":", member.Value)
}

func (t *Text) EmitLabel(_ *graph.Class, label string) error {
	return t.line(t.markers.Title, label)
}

func (t *Text) EmitFormula(_ *graph.Class, _ string) error {
	return t.line(t.markers.Formula)
}

func (t *Text) EndFile(_ *graph.File) error {
	return t.writer.Flush()
}
