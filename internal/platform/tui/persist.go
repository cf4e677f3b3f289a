package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/registry"
	"github.com/vovakirdan/tui-crawl/internal/storage"
)

// ExplorerSync keeps the explored cells of an Explorer game in the store.
// Cells are restored whenever the game enters a map and saved when a level
// is cleared, when the game ends, and when the player leaves.
// Games that are not Explorers are ignored.
type ExplorerSync struct {
	store   *storage.Store
	player  string
	logger  *log.Logger
	mapKey  string
	cleared bool
	over    bool
}

// NewExplorerSync creates a sync for one player. A nil store disables it.
func NewExplorerSync(store *storage.Store, player string, logger *log.Logger) *ExplorerSync {
	if player == "" {
		player = core.DefaultConfig().Player
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ExplorerSync{
		store:  store,
		player: player,
		logger: logger.WithPrefix("explored"),
	}
}

// Start is called after the game has been (re)initialized.
func (s *ExplorerSync) Start(game registry.Game) {
	s.cleared = false
	s.over = false
	s.restore(game)
}

// Observe is called with the state returned by every Step.
func (s *ExplorerSync) Observe(game registry.Game, state core.GameState) {
	ex, ok := game.(registry.Explorer)
	if !ok || s.store == nil {
		return
	}

	// The cleared level is still loaded while its banner shows
	if state.LevelCleared && !s.cleared {
		s.Save(game)
	}
	s.cleared = state.LevelCleared

	if state.GameOver && !s.over {
		s.Save(game)
	}
	s.over = state.GameOver

	if ex.MapKey() != s.mapKey {
		s.restore(game)
	}
}

// Save writes the explored cells of the current map.
func (s *ExplorerSync) Save(game registry.Game) {
	ex, ok := game.(registry.Explorer)
	if !ok || s.store == nil {
		return
	}
	key := ex.MapKey()
	if key == "" {
		return
	}

	pts := ex.ExportExplored()
	if err := s.store.SaveExplored(s.player, key, pts); err != nil {
		s.logger.Warn("could not save explored cells", "player", s.player, "map", key, "err", err)
		return
	}
	s.logger.Debug("saved explored cells", "player", s.player, "map", key, "cells", len(pts))
}

func (s *ExplorerSync) restore(game registry.Game) {
	ex, ok := game.(registry.Explorer)
	if !ok || s.store == nil {
		return
	}
	s.mapKey = ex.MapKey()
	if s.mapKey == "" {
		return
	}

	pts, err := s.store.LoadExplored(s.player, s.mapKey)
	if err != nil {
		s.logger.Warn("could not load explored cells", "player", s.player, "map", s.mapKey, "err", err)
		return
	}
	ex.ImportExplored(pts)
	s.logger.Debug("restored explored cells", "player", s.player, "map", s.mapKey, "cells", len(pts))
}
