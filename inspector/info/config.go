package info

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the rule file inspected when no path is given
const DefaultPath = "openfisca/openfisca_yuisekin/variables/障害/身体障害者手帳.py"

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Markers holds the fixed report lines
type Markers struct {
	Separator string `yaml:"separator"`
	Enum      string `yaml:"enum"`
	Variable  string `yaml:"variable"`
	Title     string `yaml:"title"`   // prefix of the label line
	Formula   string `yaml:"formula"` // emitted once per formula
}

type Config struct {
	Path      string   `yaml:"path"`
	Format    string   `yaml:"format"`
	LogLevel  string   `yaml:"logLevel"`
	Recursive bool     `yaml:"recursive"`
	SkipDirs  []string `yaml:"skipDirs"` // directory names skipped in recursive mode
	ShowFile  bool     `yaml:"showFile"` // print a file header line per inspected file
	Markers   Markers  `yaml:"markers"`
}

func DefaultMarkers() Markers {
	return Markers{
		Separator: "-----",
		Enum:      "Enum | パターン",
		Variable:  "Variable | 変数",
		Title:     "タイトル：",
		Formula:   "この値は計算に基づき処理されます",
	}
}

func DefaultConfig() *Config {
	return &Config{
		Path:     DefaultPath,
		Format:   FormatText,
		LogLevel: "warn",
		SkipDirs: []string{"__pycache__", "venv", ".venv", "node_modules", "build", "dist"},
		Markers:  DefaultMarkers(),
	}
}

// LoadConfig reads a YAML config; unset fields keep their defaults
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return config, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unsupported format: %q", c.Format)
	}
	if c.Markers.Separator == "" {
		return fmt.Errorf("separator marker is empty")
	}
	return nil
}
