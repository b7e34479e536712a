package report

import (
	"fmt"
	"io"

	"github.com/viant/ruleinspect/inspector/graph"
	"gopkg.in/yaml.v3"
)

// YAML writes one YAML document per inspected file once the file is complete
type YAML struct {
	writer io.Writer
	files  int
}

// NewYAML creates a YAML emitter
func NewYAML(w io.Writer) *YAML {
	return &YAML{writer: w}
}

func (y *YAML) BeginFile(_ *graph.File) error                        { return nil }
func (y *YAML) BeginClass(_ *graph.Class) error                      { return nil }
func (y *YAML) EmitKind(_ *graph.Class) error                        { return nil }
func (y *YAML) EmitMember(_ *graph.Class, _ *graph.EnumMember) error { return nil }
func (y *YAML) EmitLabel(_ *graph.Class, _ string) error             { return nil }
func (y *YAML) EmitFormula(_ *graph.Class, _ string) error           { return nil }

func (y *YAML) EndFile(file *graph.File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", file.Path, err)
	}
	if y.files > 0 {
		if _, err = io.WriteString(y.writer, "---\n"); err != nil {
			return err
		}
	}
	y.files++
	_, err = y.writer.Write(data)
	return err
}
