package report

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// colorDef is an adaptive color definition in YAML
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// styleDef is a style definition in YAML
type styleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// stylesConfig is the styles.yaml document
type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry map[string]lipgloss.Style

func init() {
	registry, err := loadStyles(embeddedStyles)
	if err != nil {
		// Embedded data is compile-time; a parse failure is a packaging bug,
		// but degrade to unstyled output rather than panicking
		styleRegistry = map[string]lipgloss.Style{}
		return
	}
	styleRegistry = registry
}

// loadStyles parses a styles document into lipgloss styles
func loadStyles(data []byte) (map[string]lipgloss.Style, error) {
	var cfg stylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Foreground != "" {
			if color, ok := colors[def.Foreground]; ok {
				style = style.Foreground(color)
			}
		}
		if def.PaddingLeft > 0 {
			style = style.PaddingLeft(def.PaddingLeft)
		}
		registry[name] = style
	}

	return registry, nil
}

// styleFor returns the named style, or the zero style if undefined
func styleFor(name string) lipgloss.Style {
	if s, ok := styleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
