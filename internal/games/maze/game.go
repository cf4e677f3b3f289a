// Package maze implements Maze, a first-person walk through the dungeon
// levels drawn with a column raycaster, with an automap of what was seen.
package maze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crawl/internal/config"
	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/fov"
	"github.com/vovakirdan/tui-crawl/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
	"github.com/vovakirdan/tui-crawl/internal/raycast"
	"github.com/vovakirdan/tui-crawl/internal/registry"
)

const (
	gameID           = "maze"
	clearTicks       = 60 // level-cleared banner, 2s at 30 FPS
	minScreenW       = 32
	minScreenH       = 10
	minAutomapRadius = 2
	reach            = 1.5 // how far away a door can be opened
	defaultTickRate  = 30
)

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       string
)

// library holds the levels of the configured directory, scanned once.
var library = levels.NewLibrary("", nil)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLevelsDir sets the directory scanned for extra level files. Skipped
// files are not reported; use SetLibrary to share a logged catalog.
func SetLevelsDir(dir string) {
	library = levels.NewLibrary(dir, nil)
}

// SetLibrary sets the level catalog new games are built from.
func SetLibrary(lib *levels.Library) {
	library = lib
}

// SetStartLevel sets the level new games start on. Empty means the first.
func SetStartLevel(id string) {
	startLevel = id
}

// Game implements Maze.
type Game struct {
	cfg      config.MazeConfig
	diff     *config.DifficultyManager
	campaign *dungeon.Campaign
	stage    *dungeon.Stage
	caster   *raycast.Caster
	cam      raycast.Camera
	engine   *fov.Engine // fills the automap
	cell     grid.Point
	startID  string

	runtime    core.RuntimeConfig
	tick       uint64
	levelTicks int
	score      int
	lastBonus  int

	automap      bool
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearTimer   int
	loadErr      error
}

// New creates a new Maze game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

var (
	_ registry.Explorer      = (*Game)(nil)
	_ registry.LevelSelector = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
)

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze"
}

// SetLevel makes this game start on the level with the given ID.
func (g *Game) SetLevel(id string) error {
	all, err := library.Levels()
	if err != nil {
		return err
	}
	if !dungeon.NewCampaign(all, id).Has(id) {
		return fmt.Errorf("maze: %w: %s", levels.ErrNotFound, id)
	}
	g.startID = id
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	mazeCfg, err := config.LoadMaze(configPath)
	if err != nil {
		mazeCfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&mazeCfg, difficultyPreset)
	}
	g.cfg = mazeCfg
	g.diff = config.NewDifficultyManager(mazeCfg.Difficulty)

	all, err := library.Levels()
	if err != nil || len(all) == 0 {
		all = levels.Campaign
	}
	start := g.startID
	if start == "" {
		start = startLevel
	}
	g.campaign = dungeon.NewCampaign(all, start)

	g.tick = 0
	g.score = 0
	g.lastBonus = 0
	g.automap = false
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.loadStage()
}

// loadStage builds the current campaign level and stands the camera in the
// middle of the start cell.
func (g *Game) loadStage() {
	g.levelCleared = false
	g.clearTimer = 0
	g.levelTicks = 0

	stage, err := dungeon.NewStage(g.campaign.Current())
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.stage = stage
	g.caster = raycast.NewCaster(stage.Grid, g.cfg.View.MaxDistance)
	g.engine = fov.NewEngine(stage.Grid)

	start := stage.Start()
	g.cam = raycast.NewCamera(float64(start.X)+0.5, float64(start.Y)+0.5, facing(stage), g.cfg.View.FOVDegrees)
	g.cell = start
	g.relight()
}

// facing picks the first open direction out of the start cell, trying
// east, south, west and north in that order.
func facing(s *dungeon.Stage) float64 {
	start := s.Start()
	dirs := []struct {
		dx, dy int
		angle  float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, -math.Pi / 2},
	}
	for _, d := range dirs {
		if s.Passable(start.Add(d.dx, d.dy)) {
			return d.angle
		}
	}
	return 0
}

func (g *Game) automapRadius() int {
	return g.diff.Radius(g.cfg.Automap.Radius, minAutomapRadius, g.score, g.levelTicks)
}

func (g *Game) relight() {
	g.engine.Compute(g.cell.X, g.cell.Y, g.automapRadius())
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return defaultTickRate
}

// Elapsed returns the seconds spent on the current level.
func (g *Game) Elapsed() float64 {
	return float64(g.levelTicks) / float64(g.tickRate())
}

// Par returns the par time for the current level in seconds.
func (g *Game) Par() float64 {
	return g.diff.ParTime(g.cfg.Scoring.ParSeconds, g.score, g.levelTicks)
}

// Resize adapts to a new screen size, keeping the game in progress.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Score returns the total banked score.
func (g *Game) Score() int {
	return g.score
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if input.Has(core.ActionMap) {
		g.automap = !g.automap
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTimer++
		if g.clearTimer >= clearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.levelTicks++
	g.processInput(input)

	return core.StepResult{State: g.State()}
}

// processInput turns and moves the camera. Walking into a door that does
// not give way tries to open it.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.cam.Rotate(-g.cfg.Movement.TurnSpeed)
	}
	if input.Has(core.ActionRight) {
		g.cam.Rotate(g.cfg.Movement.TurnSpeed)
	}

	if input.Has(core.ActionUse) {
		g.openDoorAhead()
	}

	switch {
	case input.Has(core.ActionUp):
		if !raycast.Step(&g.cam, g.cfg.Movement.MoveSpeed, g.stage.Grid) {
			g.openDoorAhead()
		}
	case input.Has(core.ActionDown):
		raycast.Step(&g.cam, -g.cfg.Movement.MoveSpeed, g.stage.Grid)
	}

	if cell := g.cam.Cell(); cell != g.cell {
		g.cell = cell
		g.relight()
		if g.stage.IsExit(cell) {
			g.clearLevel()
		}
	}
}

// openDoorAhead opens a door straight ahead of the camera within reach.
func (g *Game) openDoorAhead() bool {
	hit := g.caster.CastRay(g.cam.PosX, g.cam.PosY, g.cam.DirX, g.cam.DirY)
	if !hit.Hit || hit.Distance > reach {
		return false
	}
	if !g.stage.OpenDoor(grid.P(hit.MapX, hit.MapY)) {
		return false
	}
	g.relight()
	return true
}

// clearLevel banks the clear bonus, minus a penalty for every whole second
// over par.
func (g *Game) clearLevel() {
	over := math.Max(0, g.Elapsed()-g.Par())
	g.lastBonus = max(0, g.cfg.Scoring.ClearBonus-int(over)*g.cfg.Scoring.PenaltyPerSecond)
	g.score += g.lastBonus
	g.levelCleared = true
	g.clearTimer = 0
}

func (g *Game) advanceLevel() {
	if !g.campaign.Advance() {
		g.levelCleared = false
		g.won = true
		g.gameOver = true
		return
	}
	g.loadStage()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		GameOver:     g.gameOver,
		Won:          g.won,
		LevelCleared: g.levelCleared,
		Paused:       g.paused,
	}
}

// MapKey identifies the current level for exploration persistence.
func (g *Game) MapKey() string {
	if g.stage == nil {
		return ""
	}
	return gameID + "/" + g.stage.Level.ID
}

// ExportExplored returns every cell on the automap.
func (g *Game) ExportExplored() []grid.Point {
	if g.engine == nil {
		return nil
	}
	return g.engine.ExportExplored()
}

// ImportExplored restores automap cells from an earlier session.
// Cells outside the current map are ignored.
func (g *Game) ImportExplored(pts []grid.Point) {
	if g.engine == nil {
		return
	}
	inside := make([]grid.Point, 0, len(pts))
	for _, p := range pts {
		if g.stage.Grid.InBounds(p.X, p.Y) {
			inside = append(inside, p)
		}
	}
	g.engine.ImportExplored(inside)
}
