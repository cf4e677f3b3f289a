// Package crawl implements Crawl, a top-down dungeon crawl where the player
// only sees what a torch lights and the map remembers everything seen.
package crawl

import (
	"fmt"

	"github.com/vovakirdan/tui-crawl/internal/config"
	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/fov"
	"github.com/vovakirdan/tui-crawl/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
	"github.com/vovakirdan/tui-crawl/internal/registry"
)

const (
	gameID     = "crawl"
	clearTicks = 45 // level-cleared banner, 1.5s at 30 FPS
	minScreenW = 24
	minScreenH = 8
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

// Game implements Crawl.
type Game struct {
	cfg      config.CrawlConfig
	diff     *config.DifficultyManager
	campaign *dungeon.Campaign
	stage    *dungeon.Stage
	engine   *fov.Engine
	player   grid.Point
	radius   int
	startID  string

	runtime    core.RuntimeConfig
	tick       uint64
	levelTicks int
	score      int // banked from cleared levels
	discovered int // cells first seen on the current level

	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearTimer   int
	loadErr      error
}

// New creates a new Crawl game.
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
	return "Crawl"
}

// SetLevel makes this game start on the level with the given ID.
func (g *Game) SetLevel(id string) error {
	all, err := library.Levels()
	if err != nil {
		return err
	}
	if !dungeon.NewCampaign(all, id).Has(id) {
		return fmt.Errorf("crawl: %w: %s", levels.ErrNotFound, id)
	}
	g.startID = id
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	crawlCfg, err := config.LoadCrawl(configPath)
	if err != nil {
		crawlCfg = config.DefaultCrawlConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrawlPreset(&crawlCfg, difficultyPreset)
	}
	g.cfg = crawlCfg
	g.diff = config.NewDifficultyManager(crawlCfg.Difficulty)

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
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.loadStage()
}

// loadStage builds the current campaign level and lights the start.
func (g *Game) loadStage() {
	g.levelCleared = false
	g.clearTimer = 0
	g.levelTicks = 0
	g.discovered = 0

	stage, err := dungeon.NewStage(g.campaign.Current())
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.stage = stage
	g.engine = fov.NewEngine(stage.Grid)
	g.player = stage.Start()
	g.radius = g.currentRadius()
	g.relight()
}

// currentRadius is the torch radius after difficulty has burned it down.
func (g *Game) currentRadius() int {
	return g.diff.Radius(g.cfg.Sight.Radius, g.cfg.Sight.MinRadius, g.Score(), g.levelTicks)
}

// relight recomputes the field of view and counts newly seen cells.
func (g *Game) relight() {
	before := g.engine.ExploredCount()
	g.engine.Compute(g.player.X, g.player.Y, g.radius)
	g.discovered += g.engine.ExploredCount() - before
}

// Resize adapts to a new screen size, keeping the game in progress.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Score returns the banked score plus points for the current level.
func (g *Game) Score() int {
	return g.score + g.discovered*g.cfg.Scoring.PointsPerCell
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
	if r := g.currentRadius(); r != g.radius {
		g.radius = r
		g.relight()
	}

	g.processInput(input)

	return core.StepResult{State: g.State()}
}

// processInput moves the player one cell or opens doors.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionUse) {
		g.openAdjacentDoors()
	}

	dx, dy := 0, 0
	switch {
	case input.Has(core.ActionUp):
		dy = -1
	case input.Has(core.ActionDown):
		dy = 1
	case input.Has(core.ActionLeft):
		dx = -1
	case input.Has(core.ActionRight):
		dx = 1
	default:
		return
	}

	target := g.player.Add(dx, dy)
	switch {
	case g.stage.OpenDoor(target):
		// Bumping a door opens it; the player stays put this turn
		g.relight()
	case g.stage.Passable(target):
		g.player = target
		g.relight()
		if g.stage.IsExit(target) {
			g.clearLevel()
		}
	}
}

func (g *Game) openAdjacentDoors() {
	opened := false
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		if g.stage.OpenDoor(g.player.Add(d[0], d[1])) {
			opened = true
		}
	}
	if opened {
		g.relight()
	}
}

// clearLevel banks the level's points plus the exit bonus.
func (g *Game) clearLevel() {
	g.score = g.Score() + g.cfg.Scoring.ExitBonus
	g.discovered = 0
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
		Score:        g.Score(),
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

// ExportExplored returns every cell seen on the current level.
func (g *Game) ExportExplored() []grid.Point {
	if g.engine == nil {
		return nil
	}
	return g.engine.ExportExplored()
}

// ImportExplored restores cells seen in an earlier session. Cells outside
// the current map are ignored. Restored cells do not score.
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
