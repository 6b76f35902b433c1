// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string                 `yaml:"id"`
	Name     string                 `yaml:"name"`
	Size     int                    `yaml:"size"`
	Pairs    []YAMLPair             `yaml:"pairs"`
	Solution map[string][]YAMLCoord `yaml:"solution,omitempty"`
	Metadata map[string]string      `yaml:"metadata,omitempty"`
}

// YAMLPair is one start pair. Color may be omitted.
type YAMLPair struct {
	Color string    `yaml:"color,omitempty"`
	A     YAMLCoord `yaml:"a"`
	B     YAMLCoord `yaml:"b"`
}

// YAMLCoord is a flow sequence [x, y, z].
type YAMLCoord []int

// Coord converts to a puzzle coordinate.
func (c YAMLCoord) Coord() (puzzle.Coord, error) {
	if len(c) != 3 {
		return puzzle.Coord{}, fmt.Errorf("coordinate %v must have 3 components", []int(c))
	}
	return puzzle.C(c[0], c[1], c[2]), nil
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Size     int
	Pairs    []puzzle.Pair
	Solution puzzle.Solution
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
// Pairs without a color take the first palette color not claimed by
// another pair, in file order.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := Level{
		ID:       yl.ID,
		Name:     name,
		Size:     yl.Size,
		Pairs:    make([]puzzle.Pair, 0, len(yl.Pairs)),
		Metadata: yl.Metadata,
	}

	claimed := make(map[puzzle.Color]bool)
	explicit := make([]bool, len(yl.Pairs))
	colors := make([]puzzle.Color, len(yl.Pairs))
	for i, p := range yl.Pairs {
		if p.Color == "" {
			continue
		}
		color, ok := puzzle.ParseColor(p.Color)
		if !ok {
			return Level{}, fmt.Errorf("pair %d: unknown color %q", i, p.Color)
		}
		colors[i] = color
		explicit[i] = true
		claimed[color] = true
	}

	for i, p := range yl.Pairs {
		if !explicit[i] {
			color, ok := nextFree(claimed)
			if !ok {
				return Level{}, fmt.Errorf("pair %d: no palette color left", i)
			}
			colors[i] = color
			claimed[color] = true
		}

		a, err := p.A.Coord()
		if err != nil {
			return Level{}, fmt.Errorf("pair %d start a: %w", i, err)
		}
		b, err := p.B.Coord()
		if err != nil {
			return Level{}, fmt.Errorf("pair %d start b: %w", i, err)
		}
		level.Pairs = append(level.Pairs, puzzle.Pair{Color: colors[i], A: a, B: b})
	}

	if len(yl.Solution) > 0 {
		level.Solution = make(puzzle.Solution, len(yl.Solution))
		for colorName, coords := range yl.Solution {
			color, ok := puzzle.ParseColor(colorName)
			if !ok {
				return Level{}, fmt.Errorf("solution: unknown color %q", colorName)
			}
			flow := make([]puzzle.Coord, 0, len(coords))
			for j, yc := range coords {
				c, err := yc.Coord()
				if err != nil {
					return Level{}, fmt.Errorf("solution %s step %d: %w", colorName, j, err)
				}
				flow = append(flow, c)
			}
			level.Solution[color] = flow
		}
	}

	return level, nil
}

func nextFree(claimed map[puzzle.Color]bool) (puzzle.Color, bool) {
	for _, c := range puzzle.AllColors() {
		if !claimed[c] {
			return c, true
		}
	}
	return puzzle.ColorRed, false
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
