// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID         string
	Name       string
	X, Y       int // world map position
	Width      float64
	Height     float64
	ShowSpace  bool
	Start      bool
	Structures []Structure
}

// Structure is one placed object in a level.
// X and Y are nil when omitted; negative values count from the far edge.
type Structure struct {
	Kind   string
	X, Y   *float64
	Target string // door destination level name
	Enemy  string // enemy kind for spawns
	Item   string // item id for pickups
	Name   string // item name, for keys
	Key    string // key required to unlock
	Code   string // keypad code
	Text   string // sign text
}

// fileLevel is the on-disk shape shared by every format.
type fileLevel struct {
	ID         string          `yaml:"id" toml:"id"`
	Name       string          `yaml:"name" toml:"name"`
	Position   []int           `yaml:"position" toml:"position"`
	Size       fileSize        `yaml:"size" toml:"size"`
	ShowSpace  bool            `yaml:"show_space" toml:"show_space"`
	Start      bool            `yaml:"start" toml:"start"`
	Structures []fileStructure `yaml:"structures" toml:"structures"`
}

type fileSize struct {
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

type fileStructure struct {
	Kind   string   `yaml:"kind" toml:"kind"`
	X      *float64 `yaml:"x" toml:"x"`
	Y      *float64 `yaml:"y" toml:"y"`
	Target string   `yaml:"target" toml:"target"`
	Enemy  string   `yaml:"enemy" toml:"enemy"`
	Item   string   `yaml:"item" toml:"item"`
	Name   string   `yaml:"name" toml:"name"`
	Key    string   `yaml:"key" toml:"key"`
	Code   string   `yaml:"code" toml:"code"`
	Text   string   `yaml:"text" toml:"text"`
}

// convert validates the raw file and produces a Level.
func (fl fileLevel) convert() (Level, error) {
	if fl.Name == "" {
		return Level{}, errors.New("missing name")
	}
	if fl.Size.W <= 0 || fl.Size.H <= 0 {
		return Level{}, fmt.Errorf("level %q: size must be positive, got %vx%v", fl.Name, fl.Size.W, fl.Size.H)
	}
	if len(fl.Position) != 0 && len(fl.Position) != 2 {
		return Level{}, fmt.Errorf("level %q: position needs two values, got %d", fl.Name, len(fl.Position))
	}

	level := Level{
		ID:        fl.ID,
		Name:      fl.Name,
		Width:     fl.Size.W,
		Height:    fl.Size.H,
		ShowSpace: fl.ShowSpace,
		Start:     fl.Start,
	}
	if len(fl.Position) == 2 {
		level.X, level.Y = fl.Position[0], fl.Position[1]
	}

	for i, s := range fl.Structures {
		if s.Kind == "" {
			return Level{}, fmt.Errorf("level %q: structure %d has no kind", fl.Name, i)
		}
		level.Structures = append(level.Structures, Structure{
			Kind:   s.Kind,
			X:      s.X,
			Y:      s.Y,
			Target: s.Target,
			Enemy:  s.Enemy,
			Item:   s.Item,
			Name:   s.Name,
			Key:    s.Key,
			Code:   s.Code,
			Text:   s.Text,
		})
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes data to the parser for the file extension of name.
func Parse(name string, data []byte) (Level, error) {
	var (
		level Level
		err   error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		level, err = ParseYAML(data)
	case ".toml":
		level, err = ParseTOML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(name))
	}
	if err != nil {
		return Level{}, err
	}
	if level.ID == "" {
		base := path.Base(name)
		level.ID = strings.TrimSuffix(base, path.Ext(base))
	}
	return level, nil
}
