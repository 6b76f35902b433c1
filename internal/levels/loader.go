// Package levels provides level loading functionality for Flow3D.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flow3d/internal/levels/formats"
	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/puzzle"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// builtinPrefix marks FilePath for levels compiled into the binary.
const builtinPrefix = "builtin:"

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Size     int
	Pairs    []puzzle.Pair
	Solution puzzle.Solution // Optional reference solution
	Metadata map[string]string
	FilePath string
}

// NewPuzzle creates a fresh puzzle from the level.
// Structural problems come back as puzzle.ValidationError.
func (l *Level) NewPuzzle() (*puzzle.Puzzle, error) {
	return puzzle.NewWithPairs(l.Size, l.Pairs)
}

// IsBuiltin returns true if the level ships inside the binary.
func (l *Level) IsBuiltin() bool {
	return strings.HasPrefix(l.FilePath, builtinPrefix)
}

// Difficulty returns the difficulty tag from metadata, if any.
func (l *Level) Difficulty() string {
	return l.Metadata["difficulty"]
}

// CheckSolution applies the reference solution to a fresh puzzle and
// verifies that it wins.
func (l *Level) CheckSolution() error {
	if len(l.Solution) == 0 {
		return fmt.Errorf("level %s has no solution", l.ID)
	}
	p, err := l.NewPuzzle()
	if err != nil {
		return err
	}
	if err := puzzle.Apply(p, l.Solution); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	if !p.CheckWin() {
		return fmt.Errorf("level %s: solution leaves the cube unsolved", l.ID)
	}
	return nil
}

// Loader handles loading levels from the built-in set and a directory.
type Loader struct {
	Root    string // Directory of user levels, may be empty
	Builtin bool   // Include the levels compiled into the binary
	Logger  *log.Logger
}

// NewLoader creates a loader over the built-in levels plus root.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{Root: root, Builtin: true, Logger: logger}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return logging.Discard()
	}
	return l.Logger
}

// LoadAll loads every level. A directory level replaces a built-in one with
// the same ID. Invalid files are skipped.
// Returns levels sorted by cube size, then ID.
func (l *Loader) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)

	if l.Builtin {
		builtin, err := loadFS(builtinFS, ".", builtinPrefix, l.logger())
		if err != nil {
			return nil, fmt.Errorf("loading builtin levels: %w", err)
		}
		for _, lvl := range builtin {
			byID[lvl.ID] = lvl
		}
	}

	if l.Root != "" {
		if _, err := os.Stat(l.Root); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading levels directory %s: %w", l.Root, err)
			}
			l.logger().Debug("levels directory missing", "dir", l.Root)
		} else {
			local, err := loadFS(os.DirFS(l.Root), ".", "", l.logger())
			if err != nil {
				return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
			}
			for _, lvl := range local {
				lvl.FilePath = filepath.Join(l.Root, filepath.FromSlash(lvl.FilePath))
				if prev, dup := byID[lvl.ID]; dup {
					l.logger().Debug("level overrides another", "id", lvl.ID, "file", lvl.FilePath, "was", prev.FilePath)
				}
				byID[lvl.ID] = lvl
			}
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}

	// Sort for determinism, smaller cubes first
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Size != levels[j].Size {
			return levels[i].Size < levels[j].Size
		}
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// loadFS walks fsys for level files. FilePath is set to prefix plus the
// slash-separated path inside fsys.
func loadFS(fsys fs.FS, root, prefix string, logger *log.Logger) ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
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

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			logger.Warn("skipping unreadable level", "file", prefix+p, "error", err)
			return nil
		}

		level, err := parseLevel(data, ext, prefix+p)
		if err != nil {
			// Skip invalid files
			logger.Debug("skipping invalid level", "file", prefix+p, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	return levels, err
}

// LoadFile loads a single level file and validates its structure.
func (l *Loader) LoadFile(file string) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", file, err)
	}

	ext := strings.ToLower(filepath.Ext(file))
	if !isSupportedExtension(ext) {
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	return parseLevel(data, ext, file)
}

// parseLevel parses and structurally validates one level.
func parseLevel(data []byte, ext, source string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", source, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Size:     parsed.Size,
		Pairs:    parsed.Pairs,
		Solution: parsed.Solution,
		Metadata: parsed.Metadata,
		FilePath: source,
	}
	if level.Metadata == nil {
		level.Metadata = make(map[string]string)
	}

	if _, err := level.NewPuzzle(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", source, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in load order.
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

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
