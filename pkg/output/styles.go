package output

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sinsoku/phony/pkg/errors"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig is a styles document
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names (Country, NDC, Error, ...) to lipgloss styles
type Styles map[string]lipgloss.Style

// Get returns the named style, or a plain one
func (s Styles) Get(r *lipgloss.Renderer, name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return r.NewStyle()
}

// ParseStyles builds styles for renderer r from a YAML document
func ParseStyles(r *lipgloss.Renderer, data []byte) (Styles, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := r.NewStyle().Bold(def.Bold).Italic(def.Italic).Underline(def.Underline)
		if def.Foreground != "" {
			if color, ok := colors[def.Foreground]; ok {
				style = style.Foreground(color)
			} else {
				style = style.Foreground(lipgloss.Color(def.Foreground))
			}
		}
		styles[name] = style
	}
	return styles, nil
}

// LoadStyles reads a styles file, falling back to the embedded styles
// when path is empty
func LoadStyles(r *lipgloss.Renderer, path string) (Styles, error) {
	if path == "" {
		return ParseStyles(r, defaultStyles)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path)
	}
	return ParseStyles(r, data)
}
