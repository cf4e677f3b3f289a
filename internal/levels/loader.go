package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-crawl/internal/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. Skipped files are reported on the
// default logger.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		Logger: log.Default().WithPrefix("levels"),
	}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are logged and skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping level file", "path", path, "err", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	slices.SortFunc(levels, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w: %w", path, ErrInvalid, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Layout:   parsed.Layout,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
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
	return Level{}, fmt.Errorf("levels: %w: %s", ErrNotFound, id)
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

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}

// Catalog returns the campaign followed by the levels found under root.
// A file level with the same ID as a built-in one replaces it in place.
// An empty root, or one that does not exist, yields just the campaign.
// Skipped files are reported on logger, or on the default logger when nil.
func Catalog(root string, logger *log.Logger) ([]Level, error) {
	all := slices.Clone(Campaign)
	if root == "" {
		return all, nil
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return all, nil
	}

	l := NewLoader(root)
	if logger != nil {
		l.Logger = logger
	}
	loaded, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range loaded {
		if i := slices.IndexFunc(all, func(b Level) bool { return b.ID == lvl.ID }); i >= 0 {
			all[i] = lvl
			continue
		}
		all = append(all, lvl)
	}
	return all, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
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
