// Package levels provides the level data provider: it loads level files
// from a directory or from the built-in pack.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/bacon-invasion/internal/levels/formats"
)

// ErrLevelNotFound is returned when no level matches a lookup.
var ErrLevelNotFound = errors.New("levels: level not found")

//go:embed pack
var packFS embed.FS

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// Loader handles loading levels from a file system.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Embedded returns a loader over the built-in level pack.
func Embedded() *Loader {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack: %v", err))
	}
	return &Loader{Root: "embedded", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Check loads every level file and reports the files that failed to parse.
func (l *Loader) Check() ([]Level, map[string]error, error) {
	return l.scan()
}

func (l *Loader) scan() ([]Level, map[string]error, error) {
	var levels []Level
	problems := make(map[string]error)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			problems[p] = err
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, problems, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := formats.Parse(p, data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{Level: parsed, FilePath: path.Join(l.Root, p)}, nil
}

// LoadByName loads a specific level by its display name or ID.
func (l *Loader) LoadByName(name string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, name)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Find returns the level with the given name or ID.
func Find(levels []Level, name string) (Level, error) {
	for _, lvl := range levels {
		if lvl.Name == name || lvl.ID == name {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

// Start returns the level marked as the start, or the first level.
func Start(levels []Level) (Level, error) {
	if len(levels) == 0 {
		return Level{}, fmt.Errorf("%w: empty pack", ErrLevelNotFound)
	}
	for _, lvl := range levels {
		if lvl.Start {
			return lvl, nil
		}
	}
	return levels[0], nil
}

// Validate checks that level names are unique and door targets exist.
func Validate(levels []Level) error {
	var errs []error
	names := make(map[string]bool, len(levels))
	starts := 0
	for _, lvl := range levels {
		if names[lvl.Name] {
			errs = append(errs, fmt.Errorf("duplicate level name %q", lvl.Name))
		}
		names[lvl.Name] = true
		if lvl.Start {
			starts++
		}
	}
	if starts > 1 {
		errs = append(errs, fmt.Errorf("%d levels marked as start", starts))
	}

	for _, lvl := range levels {
		for i, s := range lvl.Structures {
			if s.Target != "" && !names[s.Target] {
				errs = append(errs, fmt.Errorf("level %q structure %d: %w: %s", lvl.Name, i, ErrLevelNotFound, s.Target))
			}
		}
	}
	return errors.Join(errs...)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
