package maze

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
	PosX     float64
	PosY     float64
	Angle    float64
	CellX    int
	CellY    int
	Explored int
	Automap  bool
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
		Score:   g.score,
		PosX:    g.cam.PosX,
		PosY:    g.cam.PosY,
		Angle:   g.cam.Angle(),
		CellX:   g.cell.X,
		CellY:   g.cell.Y,
		Automap: g.automap,
		State:   state,
	}
	if g.stage != nil {
		s.LevelID = g.stage.Level.ID
		s.Explored = g.engine.ExploredCount()
	}
	return s
}
