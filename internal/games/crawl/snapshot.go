package crawl

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StateGameOver     GameStateType = "game_over"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    int // 1-indexed for display
	LevelID  string
	Score    int
	PlayerX  int
	PlayerY  int
	Radius   int
	Visible  int
	Explored int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	s := Snapshot{
		Tick:    g.tick,
		Level:   g.campaign.Index() + 1,
		Score:   g.Score(),
		PlayerX: g.player.X,
		PlayerY: g.player.Y,
		Radius:  g.radius,
		State:   state,
	}
	if g.stage != nil {
		s.LevelID = g.stage.Level.ID
		s.Visible = g.engine.VisibleCount()
		s.Explored = g.engine.ExploredCount()
	}
	return s
}
