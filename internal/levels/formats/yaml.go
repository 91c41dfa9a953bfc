// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/full-spectrum/internal/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. Rows use the glyph legend:
// '.' empty, 'b' movable block, 'B' immovable block, 's' source on,
// 'S' source off, 'C' crystal. Every row must match the declared width and
// the row count must match the declared height.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if yl.Size.W <= 0 || yl.Size.H <= 0 {
		return Level{}, fmt.Errorf("level %s: invalid size %dx%d", yl.ID, yl.Size.W, yl.Size.H)
	}
	if len(yl.Rows) != yl.Size.H {
		return Level{}, fmt.Errorf("level %s: %d rows, declared height %d", yl.ID, len(yl.Rows), yl.Size.H)
	}
	for y, row := range yl.Rows {
		if len(row) != yl.Size.W {
			return Level{}, fmt.Errorf("level %s: row %d has length %d, declared width %d", yl.ID, y, len(row), yl.Size.W)
		}
		for x := 0; x < len(row); x++ {
			if _, ok := core.ParseGlyph(row[x]); !ok {
				return Level{}, fmt.Errorf("level %s: row %d col %d: unknown glyph %q", yl.ID, y, x, row[x])
			}
		}
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
