package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-crawl/internal/grid"
)

// SaveExplored merges explored cells for a player on a map into the store.
// Cells already stored are kept, so saving never forgets exploration.
func (s *Store) SaveExplored(player, mapKey string, pts []grid.Point) error {
	if len(pts) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin explored save: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO explored (player, map_key, x, y) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare explored insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pts {
		if _, err := stmt.Exec(player, mapKey, p.X, p.Y); err != nil {
			return fmt.Errorf("storage: cannot save explored cell %v: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit explored save: %w", err)
	}
	return nil
}

// LoadExplored returns the explored cells for a player on a map in
// row-major order. An unknown player or map yields an empty slice.
func (s *Store) LoadExplored(player, mapKey string) ([]grid.Point, error) {
	rows, err := s.db.Query(
		`SELECT x, y FROM explored
		 WHERE player = ? AND map_key = ?
		 ORDER BY y, x`,
		player, mapKey,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query explored: %w", err)
	}
	defer rows.Close()

	var pts []grid.Point
	for rows.Next() {
		var p grid.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan explored row: %w", err)
		}
		pts = append(pts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return pts, nil
}

// ClearExplored forgets a player's exploration of a map.
// An empty mapKey clears every map for the player.
func (s *Store) ClearExplored(player, mapKey string) error {
	var err error
	if mapKey == "" {
		_, err = s.db.Exec("DELETE FROM explored WHERE player = ?", player)
	} else {
		_, err = s.db.Exec("DELETE FROM explored WHERE player = ? AND map_key = ?", player, mapKey)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear explored: %w", err)
	}
	return nil
}

// ExploredCounts returns how many cells a player has explored per map.
func (s *Store) ExploredCounts(player string) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT map_key, COUNT(*) FROM explored WHERE player = ? GROUP BY map_key",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count explored: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan explored count: %w", err)
		}
		counts[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}
