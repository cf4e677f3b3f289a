package crawl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawl/internal/config"
	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
)

// newCorridorGame starts a game on the corridor test level with the torch
// difficulty switched off.
func newCorridorGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath(filepath.Join("testdata", "crawl.yaml"))
	SetLevelsDir(filepath.Join("testdata", "levels"))
	SetStartLevel("corridor")
	t.Cleanup(func() {
		SetConfigPath("")
		SetLevelsDir("")
		SetStartLevel("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30})
	if g.loadErr != nil {
		t.Fatalf("level failed to load: %v", g.loadErr)
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrameWith(actions...))
}

func TestResetLightsStart(t *testing.T) {
	g := newCorridorGame(t)

	if g.stage.Level.ID != "corridor" {
		t.Fatalf("started on %q", g.stage.Level.ID)
	}
	if g.player != grid.P(1, 1) {
		t.Errorf("player at %v, expected start (1,1)", g.player)
	}
	if !g.engine.IsVisible(1, 1) || !g.engine.IsVisible(3, 3) {
		t.Error("the start room should be lit")
	}
	if g.engine.IsVisible(6, 2) {
		t.Error("the closed door should hide the far room")
	}
	if g.Score() != g.engine.ExploredCount() {
		t.Errorf("score %d should equal explored cells %d", g.Score(), g.engine.ExploredCount())
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := newCorridorGame(t)

	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionRight) // (4,1) is a wall
	if g.player != grid.P(3, 1) {
		t.Errorf("player at %v, expected (3,1)", g.player)
	}
	press(g, core.ActionUp) // border
	if g.player != grid.P(3, 1) {
		t.Errorf("player walked into the border: %v", g.player)
	}
}

func TestBumpOpensDoor(t *testing.T) {
	g := newCorridorGame(t)

	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionDown)
	if g.player != grid.P(3, 2) {
		t.Fatalf("player at %v, expected (3,2)", g.player)
	}

	press(g, core.ActionRight)
	if g.player != grid.P(3, 2) {
		t.Error("bumping a door should not move the player")
	}
	if g.stage.IsDoor(grid.P(4, 2)) {
		t.Fatal("door should be open")
	}
	if !g.engine.IsVisible(6, 2) {
		t.Error("FOV should be recomputed when the door opens")
	}

	press(g, core.ActionRight)
	if g.player != grid.P(4, 2) {
		t.Errorf("player should walk through the open door, at %v", g.player)
	}
}

func TestUseOpensAdjacentDoors(t *testing.T) {
	g := newCorridorGame(t)
	g.player = grid.P(3, 2)

	press(g, core.ActionUse)
	if g.stage.IsDoor(grid.P(4, 2)) {
		t.Error("Use should open the adjacent door")
	}
}

func TestExitClearsLevelAndWins(t *testing.T) {
	g := newCorridorGame(t)
	g.player = grid.P(3, 2)
	g.stage.OpenDoor(grid.P(4, 2))

	var res core.StepResult
	for range 4 {
		res = press(g, core.ActionRight)
	}
	if g.player != grid.P(7, 2) {
		t.Fatalf("player at %v, expected the exit", g.player)
	}
	if !res.State.LevelCleared {
		t.Fatal("stepping on the exit should clear the level")
	}

	explored := g.engine.ExploredCount()
	if res.State.Score != explored+100 {
		t.Errorf("score = %d, expected %d explored + 100 bonus", res.State.Score, explored)
	}

	// The corridor is the last level, so the banner ends in a win
	for range clearTicks {
		res = press(g)
	}
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("expected a win after the last level, got %+v", res.State)
	}

	press(g, core.ActionRestart)
	if g.gameOver || g.player != grid.P(1, 1) {
		t.Error("restart should begin a new game")
	}
}

func TestExplorerPersistence(t *testing.T) {
	g := newCorridorGame(t)

	if g.MapKey() != "crawl/corridor" {
		t.Errorf("MapKey() = %q", g.MapKey())
	}

	before := g.Score()
	g.ImportExplored([]grid.Point{grid.P(9, 3), grid.P(50, 50), grid.P(-1, 0)})
	if !g.engine.IsExplored(9, 3) {
		t.Error("imported cell should be explored")
	}
	if g.engine.IsExplored(50, 50) || g.engine.IsExplored(-1, 0) {
		t.Error("cells outside the map should be ignored")
	}
	if g.Score() != before {
		t.Error("restored cells should not score")
	}

	exported := g.ExportExplored()
	found := false
	for _, p := range exported {
		if p == grid.P(9, 3) {
			found = true
		}
	}
	if !found {
		t.Error("export should include imported cells")
	}
}

func TestTorchBurnsDown(t *testing.T) {
	g := newCorridorGame(t)
	g.cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     config.ScalingConfig{RadiusReduction: 20},
	}
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	for range 10 {
		press(g)
	}
	if g.radius != g.cfg.Sight.MinRadius {
		t.Errorf("radius = %d, expected the floor %d", g.radius, g.cfg.Sight.MinRadius)
	}
	if g.engine.IsVisible(1, 4) {
		t.Error("cells beyond the shrunken torch should go dark")
	}
	if !g.engine.IsExplored(3, 3) {
		t.Error("dark cells stay explored")
	}
}

func TestSetLevel(t *testing.T) {
	g := newCorridorGame(t)

	if err := g.SetLevel("nope"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := g.SetLevel("crypt"); err != nil {
		t.Fatalf("SetLevel(crypt): %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12})
	if g.stage.Level.ID != "crypt" {
		t.Errorf("started on %q, expected crypt", g.stage.Level.ID)
	}
}

func TestPauseAndTooSmall(t *testing.T) {
	g := newCorridorGame(t)

	press(g, core.ActionPause)
	press(g, core.ActionRight)
	if g.player != grid.P(1, 1) {
		t.Error("paused game should not move")
	}
	press(g, core.ActionPause)
	press(g, core.ActionRight)
	if g.player != grid.P(2, 1) {
		t.Error("unpaused game should move")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 4})
	press(g, core.ActionRight)
	if g.Snapshot().State != StatePausedSmall || g.player != grid.P(1, 1) {
		t.Error("a too-small screen should hold the game")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionRight, core.ActionDown, core.ActionRight, core.ActionRight,
		core.ActionUse, core.ActionRight, core.ActionUp, core.ActionNone,
	}

	g1 := newCorridorGame(t)
	g2 := newCorridorGame(t)
	for _, a := range inputs {
		press(g1, a)
		press(g2, a)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRenderShowsMemory(t *testing.T) {
	g := newCorridorGame(t)
	g.ImportExplored([]grid.Point{grid.P(9, 3)})

	dst := core.NewScreen(40, 12)
	g.Render(dst)

	// An 11x5 map is centered in the 40x10 view below the HUD
	const offX, offY = 14, 2 + 2

	if c := dst.GetCell(1+offX, 1+offY); c.Rune != '@' {
		t.Errorf("player cell = %+v", c)
	}
	if c := dst.GetCell(9+offX, 3+offY); c.Rune != '.' || c.Color != core.ColorDarkGray {
		t.Errorf("remembered cell should be gray floor, got %+v", c)
	}
	if c := dst.GetCell(2+offX, 2+offY); c.Rune != '.' || c.Color == core.ColorDarkGray {
		t.Errorf("lit cell should be colored floor, got %+v", c)
	}
	if c := dst.GetCell(7+offX, 2+offY); c.Rune != ' ' {
		t.Errorf("unknown exit cell should be blank, got %+v", c)
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newCorridorGame(t)
	press(g, core.ActionRight)
	explored := g.engine.ExploredCount()

	g.Resize(10, 5)
	press(g, core.ActionRight)
	if g.player != grid.P(2, 1) {
		t.Errorf("player moved on a tiny screen: %v", g.player)
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Fatal("still too small after growing")
	}
	if g.player != grid.P(2, 1) || g.engine.ExploredCount() != explored {
		t.Error("resize lost progress")
	}
	press(g, core.ActionRight)
	if g.player != grid.P(3, 1) {
		t.Errorf("player at %v, expected (3,1)", g.player)
	}
}

func TestResetKeepsLevelWarningsOffScreen(t *testing.T) {
	var stderr bytes.Buffer
	log.SetOutput(&stderr)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		SetLevelsDir("")
	})

	// This directory holds two files that fail to load
	dir := filepath.Join("..", "..", "levels", "testdata", "levels")
	SetLevelsDir(dir)
	g := New()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 16, TickRate: 30}
	g.Reset(cfg)
	g.Reset(cfg)
	if err := g.SetLevel("vault"); err != nil {
		t.Fatal(err)
	}
	g.Reset(cfg)
	if stderr.Len() != 0 {
		t.Errorf("nothing should reach the default logger, got %q", stderr.String())
	}

	var logged bytes.Buffer
	SetLibrary(levels.NewLibrary(dir, log.New(&logged)))
	g.Reset(cfg)
	g.Reset(cfg)
	if n := strings.Count(logged.String(), "broken.yaml"); n != 1 {
		t.Errorf("expected the directory to be scanned once, got %d warnings", n)
	}
	if stderr.Len() != 0 {
		t.Errorf("nothing should reach the default logger, got %q", stderr.String())
	}
}
