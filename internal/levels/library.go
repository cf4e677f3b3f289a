package levels

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Library caches the catalog of one levels directory. The directory is
// scanned once, on first use, so games can ask for levels on every reset.
// It is safe for concurrent use.
type Library struct {
	root   string
	logger *log.Logger

	once   sync.Once
	levels []Level
	err    error
}

// NewLibrary creates a library for root. Skipped level files are reported
// on logger; a nil logger discards them.
func NewLibrary(root string, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Library{root: root, logger: logger}
}

// Root returns the scanned directory.
func (l *Library) Root() string {
	return l.root
}

// Levels returns a copy of the catalog. If the directory could not be
// scanned the campaign is returned together with the error.
func (l *Library) Levels() ([]Level, error) {
	l.once.Do(func() {
		l.levels, l.err = Catalog(l.root, l.logger)
	})
	if l.err != nil {
		return slices.Clone(Campaign), l.err
	}
	return slices.Clone(l.levels), nil
}

// Find returns the level with the given ID.
func (l *Library) Find(id string) (Level, error) {
	all, err := l.Levels()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: %w: %s", ErrNotFound, id)
}
