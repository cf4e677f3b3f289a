// Package dungeon holds the pieces the crawl games share: a playable stage
// built from a level, campaign progression, and the wall palette.
package dungeon

import (
	"github.com/vovakirdan/tui-crawl/internal/grid"
	"github.com/vovakirdan/tui-crawl/internal/levels"
)

// Stage is a level in play. Its tile map is a private copy, so doors opened
// during play do not leak into the level definition.
type Stage struct {
	Level levels.Level
	Grid  *grid.TileMap
	exits map[grid.Point]bool
}

// NewStage builds a stage from a level.
func NewStage(l levels.Level) (*Stage, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	m, err := l.ToGrid()
	if err != nil {
		return nil, err
	}

	exits := make(map[grid.Point]bool)
	for _, p := range l.Exits() {
		exits[p] = true
	}
	return &Stage{Level: l, Grid: m, exits: exits}, nil
}

// Start returns the player start cell.
func (s *Stage) Start() grid.Point {
	return s.Level.Start()
}

// IsExit reports whether p is an exit cell.
func (s *Stage) IsExit(p grid.Point) bool {
	return s.exits[p]
}

// Passable reports whether the player can stand in p.
func (s *Stage) Passable(p grid.Point) bool {
	return !s.Grid.IsOpaque(p.X, p.Y)
}

// IsDoor reports whether p holds a closed door.
func (s *Stage) IsDoor(p grid.Point) bool {
	return s.Grid.Tile(p.X, p.Y) == levels.TileDoor
}

// OpenDoor opens the door at p. Returns false if there is no closed door.
func (s *Stage) OpenDoor(p grid.Point) bool {
	if !s.IsDoor(p) {
		return false
	}
	s.Grid.Set(p.X, p.Y, grid.Open)
	return true
}

// Explorable counts the cells a player could ever see from inside the
// level: everything except solid rock that touches no open cell.
func (s *Stage) Explorable() int {
	n := 0
	for y := range s.Grid.H {
		for x := range s.Grid.W {
			if s.touchesFloor(x, y) {
				n++
			}
		}
	}
	return n
}

func (s *Stage) touchesFloor(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			t := s.Grid.Tile(x+dx, y+dy)
			if t == grid.Open || t == levels.TileDoor {
				return true
			}
		}
	}
	return false
}

// Campaign tracks progress through an ordered list of levels.
type Campaign struct {
	levels []levels.Level
	index  int
}

// NewCampaign starts at the level with startID, or at the first level when
// startID is empty or unknown.
func NewCampaign(all []levels.Level, startID string) *Campaign {
	c := &Campaign{levels: all}
	for i, l := range all {
		if l.ID == startID {
			c.index = i
			break
		}
	}
	return c
}

// Current returns the level being played.
func (c *Campaign) Current() levels.Level {
	if len(c.levels) == 0 {
		return levels.Level{}
	}
	return c.levels[c.index]
}

// Advance moves to the next level. Returns false when the campaign is over.
func (c *Campaign) Advance() bool {
	if c.index+1 >= len(c.levels) {
		return false
	}
	c.index++
	return true
}

// Index returns the 0-based position of the current level.
func (c *Campaign) Index() int {
	return c.index
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.levels)
}

// Has reports whether a level with the given ID is part of the campaign.
func (c *Campaign) Has(id string) bool {
	for _, l := range c.levels {
		if l.ID == id {
			return true
		}
	}
	return false
}
